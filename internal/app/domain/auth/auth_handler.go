// Package auth serves the demo admin login and logout flow on top of the
// session gate.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/domain/catalog"
	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/app/observability/metrics"
	"github.com/youcan-kampfsport/website/internal/app/pages"
)

type AuthHandlers struct {
	*domain.BaseHandler
	catalog *catalog.Service
}

func NewAuthHandlers(base *domain.BaseHandler, catalog *catalog.Service) *AuthHandlers {
	return &AuthHandlers{BaseHandler: base, catalog: catalog}
}

// LoginPrompt answers the footer dot. htmx gets the dialog fragment, a plain
// request gets the landing page with the dialog open. Admins already logged
// in go straight to the panel.
func (h *AuthHandlers) LoginPrompt(c *gin.Context) {
	if middleware.GetSession(c).Authenticated {
		middleware.Redirect(c, "/admin")
		return
	}
	if middleware.IsHTMX(c) {
		h.Render(c, http.StatusOK, "login_prompt", pages.LoginPrompt())
		return
	}

	snap, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to load catalog for login page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Die Seite ist gerade nicht verfügbar.")
		return
	}
	h.RenderWithModal(c, "YOU Can Admin Login", pages.HomePage(snap), pages.LoginPrompt())
}

// Login opens the admin session. The placeholder gate checks nothing.
func (h *AuthHandlers) Login(c *gin.Context) {
	gate := middleware.GetGate(c)
	s, err := gate.Login(c.Request.Context())
	if err != nil {
		h.Logger.Error("Login failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	metrics.Get().RecordSessionTransition(c.Request.Context(), "login")
	h.Logger.Info("Admin login",
		zap.String("user_id", s.Identity.ID),
		zap.String("ip", c.ClientIP()))
	middleware.Redirect(c, "/admin")
}

// Logout closes the admin session and returns to the landing page.
func (h *AuthHandlers) Logout(c *gin.Context) {
	gate := middleware.GetGate(c)
	if err := gate.Logout(c.Request.Context()); err != nil {
		h.Logger.Error("Logout failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	metrics.Get().RecordSessionTransition(c.Request.Context(), "logout")
	h.Logger.Info("Admin logout", zap.String("ip", c.ClientIP()))
	middleware.Redirect(c, "/")
}

// CurrentSession reports the session as JSON, 401 when nobody is logged in.
func (h *AuthHandlers) CurrentSession(c *gin.Context) {
	s, err := middleware.GetGate(c).CurrentSession(c.Request.Context())
	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case err != nil:
		h.Logger.Error("Failed to read session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
	default:
		c.JSON(http.StatusOK, s)
	}
}
