package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/domain/admin"
	"github.com/youcan-kampfsport/website/internal/app/domain/auth"
	"github.com/youcan-kampfsport/website/internal/app/domain/catalog"
	"github.com/youcan-kampfsport/website/internal/app/domain/contact"
	"github.com/youcan-kampfsport/website/internal/app/domain/home"
	"github.com/youcan-kampfsport/website/internal/app/domain/session"
	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/pkg/config"
)

// visitorCleanupInterval is how often expired visitor gates are evicted.
const visitorCleanupInterval = 10 * time.Minute

type AppHandlers struct {
	Base    *domain.BaseHandler
	Home    *home.HomeHandlers
	Auth    *auth.AuthHandlers
	Admin   *admin.AdminHandlers
	Contact *contact.Handler
	Catalog *catalog.Handler
}

// App is everything Setup wired, exposed for the server and tests.
type App struct {
	Handlers    AppHandlers
	CatalogSvc  *catalog.Service
	ContactSvc  *contact.Service
	Scope       session.Scope
	RateLimiter *middleware.RateLimiter
}

// Setup builds the domain services from cfg and mounts every route on r.
// dbPool may be nil when no component reads from Postgres. The contact rate
// limiter's pruning goroutine stops when ctx ends.
func Setup(ctx context.Context, r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	catalogRepo, err := newCatalogRepository(cfg, dbPool, logger)
	if err != nil {
		return nil, err
	}
	catalogSvc := catalog.NewService(catalogRepo, logger)

	var store contact.Store
	if dbPool != nil {
		store = contact.NewPostgresStore(dbPool, logger)
	} else {
		store = contact.NewMemoryStore(cfg.Contact.StoreSize)
	}
	contactSvc := contact.NewService(store, catalogRepo, contact.NewSpamFilter(contact.DefaultSpamTerms), logger)

	scope := newScope(cfg, logger)

	base := domain.NewBaseHandler(logger)
	h := AppHandlers{
		Base:    base,
		Home:    home.NewHomeHandlers(base, catalogSvc),
		Auth:    auth.NewAuthHandlers(base, catalogSvc),
		Admin:   admin.NewAdminHandlers(base, catalogSvc, contactSvc),
		Contact: contact.NewHandler(base, contactSvc),
		Catalog: catalog.NewHandler(catalogRepo, logger),
	}

	limiter := middleware.NewRateLimiter(logger, cfg.Contact.RateLimit, cfg.Contact.RateWindow)
	go limiter.Run(ctx)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessionChain := sessionMiddleware(cfg, scope, logger)

	site := r.Group("/", sessionChain...)
	{
		site.GET("/", h.Home.ShowHomePage)
		site.POST("/kontakt", limiter.Middleware(h.Contact.RateLimited), h.Contact.Submit)

		site.GET("/admin/login", h.Auth.LoginPrompt)
		site.POST("/admin/login", h.Auth.Login)
		site.POST("/admin/logout", h.Auth.Logout)

		adminGroup := site.Group("/admin", middleware.RequireAdmin(logger))
		{
			adminGroup.GET("", h.Admin.ShowPanel)
			adminGroup.GET("/tabs/:tab", h.Admin.ShowTab)
		}

		api := site.Group("/api")
		{
			api.GET("/session", h.Auth.CurrentSession)
			h.Catalog.Register(api)
		}
	}

	r.NoRoute(append(sessionChain, h.Base.NotFound)...)

	logger.Info("Routes registered",
		zap.String("session_scope", cfg.Session.Scope),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Bool("postgres_store", dbPool != nil))

	return &App{
		Handlers:    h,
		CatalogSvc:  catalogSvc,
		ContactSvc:  contactSvc,
		Scope:       scope,
		RateLimiter: limiter,
	}, nil
}

// sessionMiddleware resolves the gate for every page, including the 404
// page, so the admin access button reflects the current session.
func sessionMiddleware(cfg *config.Config, scope session.Scope, logger *zap.Logger) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if scope.PerVisitor() {
		tokens := session.NewVisitorTokens(cfg.Session.VisitorSecret, cfg.Session.TTL)
		chain = append(chain, middleware.VisitorMiddleware(tokens, cfg.Session.SecureCookie, logger))
	}
	return append(chain, middleware.GateMiddleware(scope))
}

func newCatalogRepository(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (catalog.Repository, error) {
	var repo catalog.Repository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("catalog source %q needs a database pool", cfg.Catalog.Source)
		}
		repo = catalog.NewPostgresRepository(dbPool, logger)
	default:
		fixtures, err := catalog.NewFixtureRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog fixtures: %w", err)
		}
		repo = fixtures
	}

	if cfg.Catalog.CacheTTL > 0 {
		repo = catalog.NewCachedRepository(repo, cfg.Catalog.CacheTTL, logger)
	}
	return repo, nil
}

func newScope(cfg *config.Config, logger *zap.Logger) session.Scope {
	if cfg.Session.Scope == config.SessionScopeVisitor {
		registry := session.NewRegistry(cfg.Session.TTL, visitorCleanupInterval, models.PlaceholderIdentity, logger)
		return session.NewVisitorScope(registry)
	}
	return session.NewApplicationScope(session.NewPlaceholderGate(logger))
}
