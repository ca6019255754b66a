package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"archetype-quiz/internal/domain"
	"archetype-quiz/internal/service"
)

// PlaybookHandler expone el perfil de cada arquetipo y la anotación de
// menciones de herramientas sobre bloques de contenido renderizado.
type PlaybookHandler struct {
	logger   *zap.Logger
	profiles []domain.ArchetypeProfile
	catalog  map[string]domain.ToolInfo
	matcher  *service.ToolMatcher
}

func NewPlaybookHandler(
	logger *zap.Logger,
	profiles []domain.ArchetypeProfile,
	catalog map[string]domain.ToolInfo,
	matcher *service.ToolMatcher,
) *PlaybookHandler {
	return &PlaybookHandler{
		logger:   logger,
		profiles: profiles,
		catalog:  catalog,
		matcher:  matcher,
	}
}

// GetPlaybook maneja GET /playbook/:archetype_id y devuelve el perfil más el
// detalle de sus herramientas recomendadas.
func (h *PlaybookHandler) GetPlaybook(c *gin.Context) {
	archetypeID := c.Param("archetype_id")
	profile, ok := service.ProfileByID(h.profiles, archetypeID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "archetype not found"})
		return
	}

	tools := make([]domain.ToolInfo, 0, len(profile.RecommendedTools))
	for _, id := range profile.RecommendedTools {
		if tool, ok := h.catalog[id]; ok {
			tools = append(tools, tool)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"tools":   tools,
	})
}

// Annotate maneja POST /playbook/annotations: recibe los bloques de una
// sección tal como los va a renderizar el front y devuelve el mapa de
// inserción de menciones para el arquetipo dado.
func (h *PlaybookHandler) Annotate(c *gin.Context) {
	var req struct {
		ArchetypeID string                `json:"archetype_id" binding:"required"`
		Blocks      []domain.ContentBlock `json:"blocks" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid annotate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, ok := service.ProfileByID(h.profiles, req.ArchetypeID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "archetype not found"})
		return
	}

	insertions := h.matcher.FindInsertionPoints(req.Blocks, profile.RecommendedTools)
	c.JSON(http.StatusOK, gin.H{"insertions": insertions})
}
