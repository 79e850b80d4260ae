package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/audit"
	domain "github.com/SilvaLimaAdvogados/legal-office-api/internal/domain/appointment"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/dto"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
	ucAppointment "github.com/SilvaLimaAdvogados/legal-office-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	promote *ucAppointment.PromoteToClient
}

func NewAppointmentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	promote *ucAppointment.PromoteToClient,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:      db,
		audit:   audit,
		promote: promote,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Subject         *string    `json:"subject,omitempty"`
	Message         *string    `json:"message,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

// ======================================================
// LIST (painel: próximas consultas primeiro)
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	status := c.Query("status")

	q := h.db.Preload("Client")

	if status != "" {
		if !domain.IsValid(domain.Status(status)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_list_appointments",
			"details": err.Error(),
		})
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Subject:         ap.Subject,
			AppointmentDate: ap.AppointmentDate,
			Status:          ap.Status,
			ClientName:      ap.Client.Name,
			ClientEmail:     ap.Client.Email,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// UPDATE STATUS (transições livres entre os quatro estados)
// ======================================================
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !domain.IsValid(domain.Status(req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Consulta não encontrada.")
		return
	}

	ap.Status = req.Status

	if err := h.db.Save(&ap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_update_status",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// UPDATE (edição geral pelo painel)
// ======================================================
func (h *AppointmentHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Consulta não encontrada.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != nil && !domain.IsValid(domain.Status(*req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	if req.Subject != nil {
		ap.Subject = *req.Subject
	}
	if req.Message != nil {
		ap.Message = *req.Message
	}
	if req.AppointmentDate != nil {
		ap.AppointmentDate = *req.AppointmentDate
	}
	if req.Status != nil {
		ap.Status = *req.Status
	}

	if err := h.db.Save(&ap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_update_appointment",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// PROMOTE (consulta → cliente da carteira)
// ======================================================
func (h *AppointmentHandler) PromoteToClient(c *gin.Context) {
	idStr := c.Param("id")

	id, ok := parseUintParam(idStr)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	client, err := h.promote.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Consulta não encontrada.")
			return
		}
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_promote",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, client)
}
