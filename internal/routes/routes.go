package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/coppa"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	gate *coppa.Gate,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	treeHandler *handlers.TreeHandler,
	updateHandler *handlers.UpdateHandler,
	moderationHandler *handlers.ModerationHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and legal pages (public)
	api.Get("/health", healthHandler.Check)
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)
	api.Get("/legal/children", legalHandler.ChildrensPrivacy)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Account lifecycle (JWT required)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Moderation — account-level, no tree scope (blocks span trees)
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.CreateReport)
	api.Post("/blocks", middleware.JWTProtected(cfg), moderationHandler.BlockUser)
	api.Delete("/blocks/:id", middleware.JWTProtected(cfg), moderationHandler.UnblockUser)
	api.Get("/blocks", middleware.JWTProtected(cfg), moderationHandler.ListBlocked)

	// Trees (JWT required; tree scope comes from the created tree itself)
	api.Post("/trees", middleware.JWTProtected(cfg), treeHandler.CreateTree)

	// Tree-scoped resources (JWT + X-Tree-ID)
	tree := api.Group("/tree", middleware.JWTProtected(cfg), middleware.TreeRequired(db))
	tree.Get("/people", treeHandler.ListPeople)
	tree.Post("/people", treeHandler.CreatePerson)
	tree.Post("/people/:id/claim", treeHandler.ClaimPerson)
	tree.Put("/people/:id", treeHandler.UpdatePerson)
	tree.Get("/people/:id/updates", updateHandler.Wall)
	tree.Get("/updates", updateHandler.Feed)

	// Content mutations additionally pass the COPPA gate
	guarded := tree.Group("", middleware.COPPAGuard(gate))
	guarded.Post("/updates", updateHandler.CreateUpdate)
	guarded.Put("/updates/:id", updateHandler.EditUpdate)
	guarded.Delete("/updates/:id", updateHandler.DeleteUpdate)
	guarded.Put("/updates/:id/tag-visibility", updateHandler.SetTagVisibility)

	// Admin moderation panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/moderation/reports", moderationHandler.ListReports)
	admin.Put("/moderation/reports/:id", moderationHandler.ActionReport)
}
