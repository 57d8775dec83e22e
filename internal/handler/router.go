package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-moderation/internal/handler/api"
	"marketplace-moderation/internal/handler/middleware"
	"marketplace-moderation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	vendorHandler *api.VendorHandler,
	statusHandler *api.StatusApplicationHandler,
	roleHandler *api.RoleApplicationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, vendorHandler, statusHandler, roleHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	vendorHandler *api.VendorHandler,
	statusHandler *api.StatusApplicationHandler,
	roleHandler *api.RoleApplicationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		vendors := apiGroup.Group("/vendors")
		{
			addRoutes(vendors, []route{
				{Method: http.MethodGet, Path: "/:publicId", Handler: vendorHandler.GetByPublicID},
			})

			vendorsAuth := vendors.Group("")
			vendorsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(vendorsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: vendorHandler.CreateListing},
				{Method: http.MethodPatch, Path: "/:publicId", Handler: vendorHandler.UpdateContent},
				{Method: http.MethodPost, Path: "/:publicId/status-applications", Handler: statusHandler.Submit},
				{Method: http.MethodGet, Path: "/:publicId/status-application", Handler: statusHandler.GetForVendor},
			})
		}

		statusApps := apiGroup.Group("/status-applications")
		statusApps.Use(authMiddleware.RequireAuth())
		{
			admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(statusApps, []route{
				{Method: http.MethodGet, Path: "/:id/events", Handler: statusHandler.ListEvents},
				{Method: http.MethodPost, Path: "/:id/accept-terms", Handler: statusHandler.AcceptTerms},
				{Method: http.MethodPost, Path: "/:id/decision", Handler: statusHandler.Decide, Mw: admin},
				{Method: http.MethodPost, Path: "/:id/apply-status", Handler: statusHandler.ApplyApprovedStatus, Mw: admin},
			})
		}

		roleApps := apiGroup.Group("/role-applications")
		roleApps.Use(authMiddleware.RequireAuth())
		{
			admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(roleApps, []route{
				{Method: http.MethodGet, Path: "/me", Handler: roleHandler.GetMine},
				{Method: http.MethodPut, Path: "/me/registration", Handler: roleHandler.SaveRegistration},
				{Method: http.MethodPost, Path: "/me/evidence", Handler: roleHandler.SubmitEvidence},
				{Method: http.MethodPost, Path: "/me/accept-terms", Handler: roleHandler.AcceptTerms},
				{Method: http.MethodGet, Path: "/:id", Handler: roleHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/events", Handler: roleHandler.ListEvents},
				{Method: http.MethodPost, Path: "/:id/evidence/:evidenceId/verify", Handler: roleHandler.VerifyEvidence, Mw: admin},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: roleHandler.Approve, Mw: admin},
				{Method: http.MethodPost, Path: "/:id/retry-role-grant", Handler: roleHandler.RetryRoleGrant, Mw: admin},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: roleHandler.Reject, Mw: admin},
				{Method: http.MethodPost, Path: "/:id/archive", Handler: roleHandler.Archive, Mw: admin},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodGet, Path: "/status-applications", Handler: statusHandler.ListPending},
				{Method: http.MethodGet, Path: "/role-applications", Handler: roleHandler.ListPending},
				{Method: http.MethodGet, Path: "/rejection-templates", Handler: roleHandler.ListRejectionTemplates},
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
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
