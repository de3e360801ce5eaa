package handlers

import (
	"github.com/SscSPs/visa_office_app/cmd/docs"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/SscSPs/visa_office_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const apiBasePath = "/api/v1"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter throttles the public login route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth)

	public := r.Group(apiBasePath)
	v1 := r.Group(apiBasePath, middleware.AuthMiddleware(cfg.JWTSecret))
	registerAuthRoutes(public, v1, services.Auth, loginLimiter)

	setupAPIV1Routes(v1, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes delegates to the entity route registrations. Routes guarded by
// adminOnly answer 403 to USER tokens.
func setupAPIV1Routes(v1 *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	v1.Use(middleware.RequireUUIDParams("id"))

	registerClientRoutes(v1, adminOnly, services.Client, services.PhoneCall)
	registerDossierRoutes(v1, services.Dossier)
	registerServiceItemRoutes(v1, services.ServiceItem)
	registerPaymentRoutes(v1, adminOnly, services.Payment)
	registerFinancialRoutes(v1, adminOnly, services.Financial)
	registerAttachmentRoutes(v1, adminOnly, services.Attachment, cfg.UploadMaxBytes)
	registerMetaRoutes(v1)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = apiBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
