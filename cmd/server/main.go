package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"riskscreen/internal/assessment"
	"riskscreen/internal/config"
	"riskscreen/internal/disease"
	"riskscreen/internal/model"
	"riskscreen/internal/report"
	"riskscreen/internal/risk"
	"riskscreen/internal/web"
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := newLogger(cfg)

	// 2. Models: load pre-fitted artifacts when a directory is configured,
	// otherwise fit on the seeded synthetic corpus at startup.
	registry := disease.NewRegistry()
	var pipelines map[disease.ID]*model.Pipeline
	if cfg.ModelsDir != "" {
		pipelines, err = model.LoadAll(cfg.ModelsDir, disease.IDs())
		if err != nil {
			log.Fatalf("load model artifacts: %v", err)
		}
		log.WithField("dir", cfg.ModelsDir).Info("model artifacts loaded")
	} else {
		pipelines = model.TrainAll()
		log.Info("models trained in-process")
	}

	// 3. Services
	engine := risk.NewEngine(pipelines)
	store := assessment.NewStore(cfg.SessionTTL)
	reports := report.NewGenerator(cfg.ReportsDir, registry)
	svc := assessment.NewService(registry, engine, store, reports, log)

	pages, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("init page renderer: %v", err)
	}
	handler := assessment.NewHandler(svc, registry, pages, log)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	handler.RegisterRoutes(r)

	// 5. Server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	waitForShutdown(srv, log)
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func waitForShutdown(srv *http.Server, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
