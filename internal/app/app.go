package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmmlab/paper-writer/config"
	"github.com/lmmlab/paper-writer/internal/controller/restapi"
	"github.com/lmmlab/paper-writer/internal/infrastructure/groq"
	"github.com/lmmlab/paper-writer/internal/infrastructure/normalizer"
	"github.com/lmmlab/paper-writer/internal/usecase/method"
	"github.com/lmmlab/paper-writer/pkg/httpserver"
	"github.com/lmmlab/paper-writer/pkg/logger"
)

func Run(cfg *config.Config) {
	// Logger
	l := logger.New(cfg.Log.Level)

	// Infrastructure

	// image normalizer
	imageNormalizer := normalizer.New(cfg.Image.MaxDimension, cfg.Image.JPEGQuality, cfg.Image.MaxEncodedBytes)

	// model client
	groqClient := groq.New(cfg.Groq)

	// Use-Case

	// method use-case
	methodUseCase := method.New(imageNormalizer, groqClient, l)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
	)
	restapi.NewRouter(httpServer.App, cfg, methodUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err := <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err := httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
