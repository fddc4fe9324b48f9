// Command processd serves the /process endpoint locally with the loopback
// processor, for running the desktop form without the OCR backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/server"
)

func main() {
	log := logger.Default().Named("processd")

	cfg, err := models.LoadConfig()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Level())
	log = logger.Default().Named("processd")

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.NewLoopbackProcessor(), log)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Listening on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown: %v", err)
		os.Exit(1)
	}
	log.Info("Stopped")
}
