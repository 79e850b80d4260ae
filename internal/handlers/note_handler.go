package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SilvaLimaAdvogados/legal-office-api/internal/audit"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/middleware"
	"github.com/SilvaLimaAdvogados/legal-office-api/internal/models"
)

type NoteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewNoteHandler(db *gorm.DB, audit *audit.Dispatcher) *NoteHandler {
	return &NoteHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	ClientID *uint  `json:"client_id,omitempty"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	ClientID *uint   `json:"client_id,omitempty"`
}

// ======================================================
// LIST (mais recentes primeiro)
// ======================================================
func (h *NoteHandler) List(c *gin.Context) {
	var notes []models.Note
	if err := h.db.
		Preload("Client").
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_list_notes",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// ======================================================
// GET
// ======================================================
func (h *NoteHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var note models.Note
	if err := h.db.
		Preload("Client").
		First(&note, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_get_note",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, note)
}

// ======================================================
// CREATE
// ======================================================
func (h *NoteHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	note := models.Note{
		Title:    req.Title,
		Content:  req.Content,
		ClientID: req.ClientID,
	}

	if err := h.db.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_create_note",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "note_created",
		Entity:   "note",
		EntityID: &note.ID,
	})

	c.JSON(http.StatusCreated, note)
}

// ======================================================
// UPDATE
// ======================================================
func (h *NoteHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var note models.Note
	if err := h.db.First(&note, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_get_note",
			"details": err.Error(),
		})
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.ClientID != nil {
		note.ClientID = req.ClientID
	}

	if err := h.db.Save(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_update_note",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "note_updated",
		Entity:   "note",
		EntityID: &note.ID,
	})

	c.JSON(http.StatusOK, note)
}

// ======================================================
// DELETE
// ======================================================
func (h *NoteHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var note models.Note
	if err := h.db.First(&note, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_get_note",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Delete(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_delete_note",
			"details": err.Error(),
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "note_deleted",
		Entity:   "note",
		EntityID: &note.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
