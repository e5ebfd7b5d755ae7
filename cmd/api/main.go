package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/elitedriving/institute-api/api/swagger"
	"github.com/elitedriving/institute-api/internal/handler"
	"github.com/elitedriving/institute-api/internal/router"
	"github.com/elitedriving/institute-api/internal/service"
	"github.com/elitedriving/institute-api/internal/store"
	"github.com/elitedriving/institute-api/pkg/config"
	"github.com/elitedriving/institute-api/pkg/export"
	"github.com/elitedriving/institute-api/pkg/logger"
)

// @title Elite Driving Institute API
// @version 1.0.0
// @description Course catalogue and registration API for the driving school site
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	st := store.NewInstrumented(store.NewMemoryStore(), metrics)
	validate := service.NewValidator()

	handlers := router.Handlers{
		Health:        handler.NewHealthHandler(cfg.ServiceName, metrics),
		Students:      handler.NewStudentHandler(service.NewStudentService(st, validate, logr)),
		Courses:       handler.NewCourseHandler(service.NewCourseService(st, validate, logr, export.NewCSVExporter())),
		Registrations: handler.NewRegistrationHandler(service.NewRegistrationService(st, validate, logr, metrics)),
		Payments:      handler.NewPaymentHandler(service.NewPaymentService(st, validate, logr, metrics, export.NewPDFExporter())),
	}

	r := router.New(cfg, logr, metrics, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "service", cfg.ServiceName)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
