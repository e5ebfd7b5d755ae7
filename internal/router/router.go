package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/elitedriving/institute-api/internal/handler"
	"github.com/elitedriving/institute-api/internal/middleware"
	"github.com/elitedriving/institute-api/internal/service"
	"github.com/elitedriving/institute-api/pkg/config"
	"github.com/elitedriving/institute-api/pkg/logger"
	corsmiddleware "github.com/elitedriving/institute-api/pkg/middleware/cors"
	reqidmiddleware "github.com/elitedriving/institute-api/pkg/middleware/requestid"
)

// Handlers bundles every endpoint group the router mounts.
type Handlers struct {
	Health        *handler.HealthHandler
	Students      *handler.StudentHandler
	Courses       *handler.CourseHandler
	Registrations *handler.RegistrationHandler
	Payments      *handler.PaymentHandler
}

// New assembles the gin engine with the shared middleware chain and the REST
// surface mounted under the configured API prefix.
func New(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", h.Health.Prometheus)

	if cfg.Docs.Enabled && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/health", h.Health.Health)

		api.POST("/students", h.Students.Create)
		api.GET("/students/:id", h.Students.Get)
		api.GET("/students/email/:email", h.Students.GetByEmail)

		api.GET("/courses", h.Courses.List)
		api.GET("/courses/:id", h.Courses.Get)
		api.GET("/courses/:id/roster.csv", h.Courses.Roster)

		api.POST("/registrations", h.Registrations.Create)
		api.GET("/registrations/:id", h.Registrations.Get)
		api.PATCH("/registrations/:id/status", h.Registrations.UpdateStatus)
		api.PATCH("/registrations/:id/payment-status", h.Registrations.UpdatePaymentStatus)

		api.POST("/payments", h.Payments.Create)
		api.GET("/payments/registration/:registrationId", h.Payments.GetByRegistration)
		api.PATCH("/payments/:id/status", h.Payments.UpdateStatus)
		api.GET("/payments/:id/receipt", h.Payments.Receipt)
	}

	return r
}
