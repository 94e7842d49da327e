package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/klarbok/klarbok_backend/cmd/docs"
	portssvc "github.com/klarbok/klarbok_backend/internal/core/ports/services"
	"github.com/klarbok/klarbok_backend/internal/middleware"
	"github.com/klarbok/klarbok_backend/internal/platform/config"
	"github.com/klarbok/klarbok_backend/internal/providers/pdf"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.UserSvc)
	registerOrganizationRoutes(v1, services, pdf.New())
}

// registerOrganizationRoutes wires the organization group and everything nested
// under one organization: verifications, periods, reports and meetings.
func registerOrganizationRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer, pdfProvider pdf.Provider) {
	orgHandler := newOrganizationHandler(services.OrganizationSvc)
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", orgHandler.createOrganization)
		orgs.GET("", orgHandler.listOrganizations)
	}

	org := orgs.Group("/:organization_id")
	{
		org.GET("", orgHandler.getOrganization)

		registerVerificationRoutes(org, services.VerificationSvc)
		registerPeriodRoutes(org, services.PeriodSvc)
		registerReportRoutes(org, services.ReportingSvc, services.OrganizationSvc, pdfProvider)
		registerMeetingRoutes(org, services.MeetingSvc)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
