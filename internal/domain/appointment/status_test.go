package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled} {
		assert.True(t, IsValid(s), "status %q deveria ser válido", s)
	}

	for _, s := range []Status{"", "scheduled", "Pending", "cancelled", "done"} {
		assert.False(t, IsValid(s), "status %q não deveria ser válido", s)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
