package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"archetype-quiz/internal/repository"
)

// NoteHandler implementa el lado servidor del store remoto de notas.
type NoteHandler struct {
	logger *zap.Logger
	notes  repository.NoteRepository
}

func NewNoteHandler(logger *zap.Logger, notes repository.NoteRepository) *NoteHandler {
	return &NoteHandler{logger: logger, notes: notes}
}

// CreateNote maneja POST /notes y devuelve el id remoto asignado.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		SectionID string `json:"section_id" binding:"required"`
		Content   string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create note request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	note := repository.Note{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		SectionID: req.SectionID,
		Content:   req.Content,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.notes.Create(c.Request.Context(), note); err != nil {
		h.logger.Error("create note failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": note.ID})
}

// UpdateNote maneja PUT /notes/:id.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update note request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id := c.Param("id")
	err := h.notes.UpdateContent(c.Request.Context(), id, claims.UserID, req.Content, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		h.logger.Error("update note failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListNotes maneja GET /notes y devuelve todas las notas del usuario.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	notes, err := h.notes.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list notes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}
