package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"archetype-quiz/internal/config"
	"archetype-quiz/internal/db"
	apihttp "archetype-quiz/internal/http"
	"archetype-quiz/internal/repository"
	"archetype-quiz/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	resultRepo := repository.NewPgResultRepository(pool)
	noteRepo := repository.NewPgNoteRepository(pool)

	resolver := service.NewArchetypeResolver(service.ArchetypeProfiles(), service.ResolverConfig{
		SecondaryWindow:  cfg.SecondaryWindow,
		ConfidenceScale:  cfg.ConfidenceScale,
		ConfidenceLowCut: cfg.ConfidenceLowCut,
		ConfidenceMedCut: cfg.ConfidenceMedCut,
	})
	matcher := service.NewToolMatcher(service.ToolCatalog(), service.ToolAliases())

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, note endpoints will reject all tokens")
	}

	quizHandler := apihttp.NewQuizHandler(logger, resolver, service.QuestionBank(), resultRepo, func(c *gin.Context) error {
		return db.Ping(c.Request.Context(), pool)
	})
	playbookHandler := apihttp.NewPlaybookHandler(logger, service.ArchetypeProfiles(), service.ToolCatalog(), matcher)
	noteHandler := apihttp.NewNoteHandler(logger, noteRepo)
	router := apihttp.NewRouter(logger, jwtSvc, quizHandler, playbookHandler, noteHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
