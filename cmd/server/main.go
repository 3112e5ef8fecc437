package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eval-server/internal/adapter/rest"
	"eval-server/internal/di"
	"eval-server/internal/infrastructure/env"
)

func main() {
	envService := env.NewService()

	container, err := di.NewContainer(di.Config{
		APIKey:             envService.Get("GROQ_API_KEY"),
		BaseURL:            envService.Get("GROQ_BASE_URL"),
		ChatModel:          envService.Get("CHAT_MODEL"),
		TranscriptionModel: envService.Get("TRANSCRIPTION_MODEL"),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	if !container.APIConfigured {
		// Startup continues; /health reports the missing credential.
		container.Logger.Warn("GROQ_API_KEY is not set, upstream calls will fail")
	}

	addr := envService.GetWithDefault("HTTP_ADDR", ":8000")
	timeout := time.Duration(envService.GetInt("REQUEST_TIMEOUT_SECONDS", 120)) * time.Second

	srv := rest.NewServer(rest.Config{
		Addr:           addr,
		RequestTimeout: timeout,
		APIConfigured:  container.APIConfigured,
	}, container.Evaluator, container.Transcriber, container.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	container.Logger.Info("Server listening", "addr", addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		container.Logger.Info("Shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("Shutdown failed", "error", err)
		}
	}
}
