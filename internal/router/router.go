package router

import (
	"time"

	"quotecraft/internal/config"
	"quotecraft/internal/handler"
	"quotecraft/internal/middleware"
	"quotecraft/internal/repository"
	"quotecraft/internal/service"
	"quotecraft/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	defaultsRepo := repository.NewDefaultsRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	projectCostRepo := repository.NewProjectCostRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	categorySvc := service.NewCategoryService(categoryRepo)
	catalogSvc := service.NewCatalogService(catalogRepo, rdb)
	defaultsSvc := service.NewDefaultsService(defaultsRepo)
	pricingSvc := service.NewPricingService(defaultsSvc)
	quoteSvc := service.NewQuoteService(quoteRepo, templateRepo, pricingSvc, dispatcher)
	templateSvc := service.NewTemplateService(templateRepo, pricingSvc)
	inquirySvc := service.NewInquiryService(inquiryRepo, dispatcher, cfg)
	projectCostSvc := service.NewProjectCostService(projectCostRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	defaultsH := handler.NewDefaultsHandler(defaultsSvc)
	pricingH := handler.NewPricingHandler(pricingSvc)
	quotesH := handler.NewQuotesHandler(quoteSvc)
	templatesH := handler.NewTemplatesHandler(templateSvc)
	inquiriesH := handler.NewInquiriesHandler(inquirySvc)
	projectCostsH := handler.NewProjectCostsHandler(projectCostSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Contact form — no auth required
	r.POST("/v1/inquiries", inquiriesH.Create)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Categories — everyone reads, admin writes
		v1.GET("/categories", categoriesH.List)
		v1.GET("/categories/:key", categoriesH.GetByKey)
		categories := v1.Group("/categories", middleware.RequireRole("admin"))
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}

		// Catalog — scoped to the authenticated user
		catalog := v1.Group("/catalog")
		{
			catalog.POST("", catalogH.Create)
			catalog.GET("", catalogH.List)
			catalog.GET("/by-category/:key", catalogH.ListByCategory)
			catalog.GET("/:id", catalogH.Get)
			catalog.PUT("/:id", catalogH.Update)
			catalog.DELETE("/:id", catalogH.Deactivate)
			catalog.PATCH("/:id/reactivate", catalogH.Reactivate)
		}

		// Per-category pricing defaults
		defaults := v1.Group("/defaults")
		{
			defaults.GET("", defaultsH.List)
			defaults.GET("/:key", defaultsH.Get)
			defaults.PUT("/:key", defaultsH.Upsert)
			defaults.DELETE("/:key", defaultsH.Delete)
		}

		// Stateless pricing computations (editor previews)
		pricing := v1.Group("/pricing")
		{
			pricing.POST("/line", pricingH.ComputeLine)
			pricing.POST("/tiling", pricingH.ComputeTiling)
			pricing.POST("/tiling/summary", pricingH.SummarizeTiling)
			pricing.POST("/quote-totals", pricingH.QuoteTotals)
			pricing.GET("/tiling/options", pricingH.ComplexityOptions)
		}

		// Quotes
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", quotesH.Create)
			quotes.GET("", quotesH.List)
			quotes.POST("/from-template/:id", quotesH.CreateFromTemplate)
			quotes.GET("/:id", quotesH.Get)
			quotes.PUT("/:id", quotesH.Update)
			quotes.DELETE("/:id", quotesH.Delete)
			quotes.POST("/:id/send", quotesH.Send)
		}

		// Quote templates
		templates := v1.Group("/templates")
		{
			templates.POST("", templatesH.Create)
			templates.GET("", templatesH.List)
			templates.GET("/:id", templatesH.Get)
			templates.PUT("/:id", templatesH.Update)
			templates.DELETE("/:id", templatesH.Deactivate)
		}

		// Actual project costs
		costs := v1.Group("/project-costs")
		{
			costs.POST("", projectCostsH.Create)
			costs.GET("", projectCostsH.List)
			costs.PUT("/:id", projectCostsH.Update)
			costs.DELETE("/:id", projectCostsH.Delete)
		}

		// Inquiry management — admin only
		inquiries := v1.Group("/inquiries", middleware.RequireRole("admin"))
		{
			inquiries.GET("", inquiriesH.List)
			inquiries.GET("/:id", inquiriesH.Get)
			inquiries.PUT("/:id", inquiriesH.Update)
			inquiries.DELETE("/:id", inquiriesH.Delete)
		}

		// User administration — admin only
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
