package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPayload() IntakePayload {
	return IntakePayload{
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		Phone:   "(11) 99999-0000",
		Subject: "Revisão de contrato",
		Message: "Preciso de orientação.",
	}
}

func TestValidateIntake(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IntakePayload)
		want   string
	}{
		{"valid", func(p *IntakePayload) {}, ""},
		{"missing name", func(p *IntakePayload) { p.Name = "" }, MsgNameRequired},
		{"blank name", func(p *IntakePayload) { p.Name = "   " }, MsgNameRequired},
		{"missing email", func(p *IntakePayload) { p.Email = "" }, MsgEmailRequired},
		{"blank email", func(p *IntakePayload) { p.Email = "\t" }, MsgEmailRequired},
		{"missing subject", func(p *IntakePayload) { p.Subject = "" }, MsgSubjectRequired},
		{"blank subject", func(p *IntakePayload) { p.Subject = "  " }, MsgSubjectRequired},
		{"optional fields absent", func(p *IntakePayload) { p.Phone = ""; p.Message = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			assert.Equal(t, tt.want, ValidateIntake(p))
		})
	}
}

// Nome falta antes de email, email antes de assunto.
func TestValidateIntakePrecedence(t *testing.T) {
	p := IntakePayload{}
	assert.Equal(t, MsgNameRequired, ValidateIntake(p))

	p.Name = "Maria"
	assert.Equal(t, MsgEmailRequired, ValidateIntake(p))

	p.Email = "maria@example.com"
	assert.Equal(t, MsgSubjectRequired, ValidateIntake(p))
}

func TestValidateIntakeIsPure(t *testing.T) {
	p := validPayload()
	p.Subject = ""

	first := ValidateIntake(p)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ValidateIntake(p))
	}
}

func TestNormalize(t *testing.T) {
	p := validPayload()
	p.Phone = "   "
	p.Message = "\n"

	p.Normalize()

	assert.Equal(t, "", p.Phone)
	assert.Equal(t, "", p.Message)

	// campos preenchidos não são tocados
	q := validPayload()
	q.Normalize()
	assert.Equal(t, validPayload().Phone, q.Phone)
	assert.Equal(t, validPayload().Message, q.Message)
}
