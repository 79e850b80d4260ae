package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httpresp"
	ucAppointment "github.com/SilvaLimaAdvogados/legal-office-api/internal/usecase/appointment"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/validators"
)

// ======================================================
// HANDLER — FORMULÁRIO PÚBLICO DE CONTATO
// ======================================================

type IntakeHandler struct {
	intake *ucAppointment.Intake
}

func NewIntakeHandler(intake *ucAppointment.Intake) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// Create recebe o pedido de consulta do site. Validação primeiro
// (nenhuma escrita acontece se falhar); depois um upsert de cliente e
// um insert de agendamento, nessa ordem.
func (h *IntakeHandler) Create(c *gin.Context) {
	var payload validators.IntakePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if msg := validators.ValidateIntake(payload); msg != "" {
		httperr.BadRequest(c, "missing_required_field", msg)
		return
	}

	_, err := h.intake.Execute(c.Request.Context(), payload)
	if err != nil {
		// detalhe fica só no log; o site recebe mensagem genérica
		if httperr.IsBusiness(err, "client_upsert_failed") {
			httperr.Internal(c, "client_upsert_failed", "Erro ao criar cliente")
			return
		}

		httperr.Internal(c, "appointment_insert_failed", "Erro ao criar agendamento")
		return
	}

	httpresp.Success(c, "Consulta agendada com sucesso")
}
