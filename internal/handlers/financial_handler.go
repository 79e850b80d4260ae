package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/audit"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/httperr"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/realtime"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/report"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type FinancialHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	realtime *realtime.Publisher
}

func NewFinancialHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	rt *realtime.Publisher,
) *FinancialHandler {
	return &FinancialHandler{
		db:       db,
		audit:    audit,
		realtime: rt,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateFinancialRecordRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	RecordType  string  `json:"record_type" binding:"required,oneof=receita despesa"`
	Category    string  `json:"category"`
	RecordDate  string  `json:"record_date"` // YYYY-MM-DD
}

type UpdateFinancialRecordRequest struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	RecordType  *string  `json:"record_type,omitempty"`
	Category    *string  `json:"category,omitempty"`
	RecordDate  *string  `json:"record_date,omitempty"`
}

// ======================================================
// HELPERS
// ======================================================

// período opcional via ?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *FinancialHandler) periodQuery(c *gin.Context) *gorm.DB {
	q := h.db.Model(&models.FinancialRecord{})

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, timezone.Location()); err == nil {
			q = q.Where("record_date >= ?", from)
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, timezone.Location()); err == nil {
			q = q.Where("record_date < ?", to.Add(24*time.Hour))
		}
	}

	return q
}

// ======================================================
// LIST (mais recentes primeiro)
// ======================================================
func (h *FinancialHandler) List(c *gin.Context) {
	var records []models.FinancialRecord
	if err := h.periodQuery(c).
		Order("record_date DESC").
		Find(&records).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_list_records",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, records)
}

// ======================================================
// CREATE
// ======================================================
func (h *FinancialHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	recordDate := timezone.Now()
	if req.RecordDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.RecordDate, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_record_date", "Data inválida.")
			return
		}
		recordDate = parsed
	}

	record := models.FinancialRecord{
		Description: req.Description,
		Amount:      req.Amount,
		RecordType:  req.RecordType,
		Category:    req.Category,
		RecordDate:  recordDate,
	}

	if err := h.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_create_record",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "financial_record_created",
		Entity:   "financial_record",
		EntityID: &record.ID,
	})

	h.realtime.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity: "financial_record",
		Action: realtime.ActionCreated,
		ID:     record.ID,
	})

	c.JSON(http.StatusCreated, record)
}

// ======================================================
// UPDATE
// ======================================================
func (h *FinancialHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var record models.FinancialRecord
	if err := h.db.First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "record_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_get_record",
			"details": err.Error(),
		})
		return
	}

	var req UpdateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.RecordType != nil &&
		*req.RecordType != models.RecordTypeRevenue &&
		*req.RecordType != models.RecordTypeExpense {
		httperr.BadRequest(c, "invalid_record_type", "Tipo inválido.")
		return
	}

	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	if req.RecordType != nil {
		record.RecordType = *req.RecordType
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.RecordDate != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.RecordDate, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_record_date", "Data inválida.")
			return
		}
		record.RecordDate = parsed
	}

	if err := h.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_update_record",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "financial_record_updated",
		Entity:   "financial_record",
		EntityID: &record.ID,
	})

	h.realtime.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity: "financial_record",
		Action: realtime.ActionUpdated,
		ID:     record.ID,
	})

	c.JSON(http.StatusOK, record)
}

// ======================================================
// DELETE
// ======================================================
func (h *FinancialHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var record models.FinancialRecord
	if err := h.db.First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "record_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_get_record",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_delete_record",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "financial_record_deleted",
		Entity:   "financial_record",
		EntityID: &record.ID,
	})

	h.realtime.Publish(c.Request.Context(), realtime.ChangeEvent{
		Entity: "financial_record",
		Action: realtime.ActionDeleted,
		ID:     record.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// SUMMARY (cards do painel financeiro)
// ======================================================
func (h *FinancialHandler) Summary(c *gin.Context) {
	var records []models.FinancialRecord
	if err := h.db.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_load_records",
			"details": err.Error(),
		})
		return
	}

	var clientsCount int64
	if err := h.db.Model(&models.Client{}).Count(&clientsCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_count_clients",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report.BuildSummary(records, clientsCount))
}

// ======================================================
// EXPORT CSV
// ======================================================
func (h *FinancialHandler) Export(c *gin.Context) {
	var records []models.FinancialRecord
	if err := h.periodQuery(c).
		Order("record_date DESC").
		Find(&records).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_export",
			"details": err.Error(),
		})
		return
	}

	if len(records) == 0 {
		httperr.NotFound(c, "no_records", "Não existem registros financeiros para exportar no período selecionado.")
		return
	}

	csv := report.FinancialCSV(records)

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(timezone.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// ======================================================
// STREAM (SSE alimentado pelo canal redis)
// ======================================================
func (h *FinancialHandler) Stream(c *gin.Context) {
	sub := h.realtime.Subscribe(c.Request.Context())
	defer sub.Close()

	ch := sub.Channel()

	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
