package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"archetype-quiz/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	quizH *QuizHandler,
	playbookH *PlaybookHandler,
	noteH *NoteHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", quizH.Health)

	quiz := r.Group("/quiz")
	quiz.GET("/questions", quizH.GetQuestions)
	quiz.POST("/submit", quizH.SubmitQuiz)
	quiz.GET("/results/:session_id", quizH.GetResult)

	playbook := r.Group("/playbook")
	playbook.GET("/:archetype_id", playbookH.GetPlaybook)
	playbook.POST("/annotations", playbookH.Annotate)

	// El store remoto de notas exige credencial bearer; sin credencial el
	// cliente queda en modo local-only y ni llega acá.
	notes := r.Group("/notes")
	notes.Use(JWTAuthMiddleware(jwtSvc))
	notes.GET("", noteH.ListNotes)
	notes.POST("", noteH.CreateNote)
	notes.PUT("/:id", noteH.UpdateNote)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
