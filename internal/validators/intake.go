package validators

import "strings"

// Mensagens do formulário público, na ordem de precedência da validação.
const (
	MsgNameRequired    = "Nome é obrigatório"
	MsgEmailRequired   = "Email é obrigatório"
	MsgSubjectRequired = "Assunto é obrigatório"
)

// IntakePayload é o corpo enviado pelo formulário de contato do site.
type IntakePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidateIntake devolve a primeira mensagem de erro ou "" quando o
// payload é válido. Campos opcionais (phone, message) nunca reprovam.
func ValidateIntake(p IntakePayload) string {
	if isBlank(p.Name) {
		return MsgNameRequired
	}
	if isBlank(p.Email) {
		return MsgEmailRequired
	}
	if isBlank(p.Subject) {
		return MsgSubjectRequired
	}
	return ""
}

// Normalize reduz phone e message em branco ao marcador vazio.
func (p *IntakePayload) Normalize() {
	if isBlank(p.Phone) {
		p.Phone = ""
	}
	if isBlank(p.Message) {
		p.Message = ""
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
