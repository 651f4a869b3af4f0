package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	HomeUC          domain.HomeUsecase
	ProfileUC       domain.ProfileUsecase
	BlogUC          domain.BlogUsecase
	ProjectUC       domain.ProjectUsecase
	ResearchUC      domain.ResearchUsecase
	ConferenceUC    domain.ConferenceUsecase
	AchievementUC   domain.AchievementUsecase
	CertificationUC domain.CertificationUsecase
	HighlightUC     domain.HighlightUsecase
	SkillUC         domain.SkillUsecase
	JWKSProvider    *auth.Provider
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes: stricter rate limit, then the session guard
	admin := v1.Group("/admin")
	admin.Use(middleware.RateLimitMiddleware(middleware.AdminRateLimitConfig(deps.Config)))
	admin.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewSessionHandler(admin)
	}

	// Public reads + admin CRUD per entity
	NewHomeHandler(v1, deps.HomeUC)
	NewPreferenceHandler(v1)
	NewProfileHandler(v1, admin, deps.ProfileUC)
	NewBlogHandler(v1, admin, deps.BlogUC)
	NewProjectHandler(v1, admin, deps.ProjectUC)
	NewResearchHandler(v1, admin, deps.ResearchUC)
	NewConferenceHandler(v1, admin, deps.ConferenceUC)
	NewAchievementHandler(v1, admin, deps.AchievementUC)
	NewCertificationHandler(v1, admin, deps.CertificationUC)
	NewHighlightHandler(v1, admin, deps.HighlightUC)
	NewSkillHandler(v1, admin, deps.SkillUC)

	return r
}
