package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"archetype-quiz/internal/domain"
	"archetype-quiz/internal/repository"
	"archetype-quiz/internal/service"
)

// QuizHandler mantiene dependencias para los endpoints del quiz.
type QuizHandler struct {
	logger   *zap.Logger
	scorer   service.AxisScorer
	resolver *service.ArchetypeResolver
	bank     []domain.Question
	results  repository.ResultRepository
	ping     func(ctx *gin.Context) error
}

// NewQuizHandler crea una instancia de QuizHandler con dependencias necesarias.
func NewQuizHandler(
	logger *zap.Logger,
	resolver *service.ArchetypeResolver,
	bank []domain.Question,
	results repository.ResultRepository,
	ping func(ctx *gin.Context) error,
) *QuizHandler {
	return &QuizHandler{
		logger:   logger,
		resolver: resolver,
		bank:     bank,
		results:  results,
		ping:     ping,
	}
}

// Health maneja GET /healthz.
func (h *QuizHandler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetQuestions maneja GET /quiz/questions.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.bank})
}

// SubmitQuiz maneja POST /quiz/submit: puntúa las respuestas, resuelve el
// arquetipo y persiste el registro de la sesión.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req struct {
		SessionID string           `json:"session_id"`
		Answers   domain.AnswerSet `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit quiz request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Malformación de entrada se rechaza en el borde: ids desconocidos no
	// llegan al scorer ni al resolver.
	known := make(map[string]struct{}, len(h.bank))
	for _, q := range h.bank {
		known[q.ID] = struct{}{}
	}
	for id := range req.Answers {
		if _, ok := known[id]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown question id: " + id})
			return
		}
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	scores := h.scorer.ComputeAxisScores(req.Answers, h.bank)
	archetype, err := h.resolver.Determine(scores)
	if err != nil {
		h.logger.Error("determine archetype failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve archetype"})
		return
	}

	result := domain.QuizResult{
		ID:          uuid.NewString(),
		SessionID:   req.SessionID,
		Answers:     req.Answers,
		Scores:      scores,
		ArchetypeID: archetype.Primary.ID,
		Confidence:  archetype.Confidence,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.results.Save(c.Request.Context(), result); err != nil {
		h.logger.Error("save quiz result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"scores":     scores,
		"archetype":  archetype,
	})
}

// GetResult maneja GET /quiz/results/:session_id.
func (h *QuizHandler) GetResult(c *gin.Context) {
	sessionID := c.Param("session_id")
	result, err := h.results.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get quiz result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
