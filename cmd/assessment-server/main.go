// cmd/assessment-server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ready-assessment/internal/assessment"
	"ready-assessment/internal/common/config"
	"ready-assessment/internal/common/genai"
	commonhttp "ready-assessment/internal/common/http"
	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/common/observability"
	formatrequest "ready-assessment/internal/pipeline/format-request"
	generatereport "ready-assessment/internal/pipeline/generate-report"
	scoreobjective "ready-assessment/internal/pipeline/score-objective"
	scoresubjective "ready-assessment/internal/pipeline/score-subjective"
	"ready-assessment/internal/server"
	"ready-assessment/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	appLogger := logger.NewZapAdapter(zapLogger)

	appLogger.Info("Starting assessment server", map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
		"model":       cfg.GenAI.Model,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	client := genai.NewAPIClient(cfg.GenAI, commonhttp.NewClient(), appLogger)

	svc := assessment.NewService(
		formatrequest.NewHandler(appLogger),
		scoreobjective.NewHandler(appLogger),
		scoresubjective.NewHandler(client, appLogger),
		generatereport.NewHandler(client, appLogger),
		store.NewResultLog(),
		appLogger,
	)

	handler := server.NewHandler(svc, appLogger, obs)
	router := server.NewRouter(handler, cfg.Server)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", map[string]interface{}{"error": err.Error()})
	}
}
