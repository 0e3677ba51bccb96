package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gembank/internal/domain/profile"
	"gembank/internal/handler/api"
	"gembank/internal/handler/middleware"
	"gembank/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Deposit *api.DepositHandler
	Card    *api.CardHandler
	Webhook *api.WebhookHandler
	Cron    *api.CronHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, depositLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, depositLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, depositLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck(cfg))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		deposits := apiGroup.Group("/deposits")
		deposits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(deposits, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Deposit.CreateDeposit, Mw: []gin.HandlerFunc{depositLimiter.Middleware("deposit")}},
				{Method: http.MethodGet, Path: "", Handler: handlers.Deposit.ListDeposits},
			})
		}

		cards := apiGroup.Group("/cards")
		cards.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cards, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Card.RequestCard},
				{Method: http.MethodGet, Path: "", Handler: handlers.Card.ListCards},
			})
		}

		// Signed by the provider, not by a user session.
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/banking", Handler: handlers.Webhook.IngestBanking},
		})

		// Authenticated by the shared cron secret inside the handler.
		addRoutes(apiGroup.Group("/cron"), []route{
			{Method: http.MethodPost, Path: "/email-worker", Handler: handlers.Cron.RunWorker},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(profile.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/operations", Handler: handlers.Admin.ListOperations},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"env":       cfg.Env,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
