package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
)

func TestPromoteToClient(t *testing.T) {
	repo := newFakeRepo()

	ap, err := newIntake(repo).Execute(context.Background(), payload())
	require.NoError(t, err)

	client, err := NewPromoteToClient(repo).Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	assert.Equal(t, ap.ClientID, client.ID)
	assert.Equal(t, "joao@example.com", client.Email)
}

func TestPromoteToClientNotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewPromoteToClient(repo).Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
