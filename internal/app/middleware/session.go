package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain/session"
	"github.com/youcan-kampfsport/website/internal/app/models"
)

// Context keys set by the session middleware.
const (
	VisitorIDKey = "visitor_id"
	GateKey      = "session_gate"
	SessionKey   = "session"
)

// VisitorCookie is the name of the signed visitor id cookie.
const VisitorCookie = "yc_visitor"

// VisitorMiddleware makes sure each browser carries a signed visitor id and
// stores it in the context. Invalid or expired cookies are replaced.
func VisitorMiddleware(tokens *session.VisitorTokens, secure bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(VisitorCookie); err == nil && raw != "" {
			if id, err := tokens.Parse(raw); err == nil {
				c.Set(VisitorIDKey, id)
				c.Next()
				return
			}
			logger.Debug("Discarding invalid visitor cookie", zap.String("ip", c.ClientIP()))
		}

		id, token, err := tokens.Issue()
		if err != nil {
			logger.Error("Failed to issue visitor token", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, token, int(tokens.TTL().Seconds()), "/", "", secure, true)
		c.Set(VisitorIDKey, id)
		c.Next()
	}
}

// GateMiddleware resolves the session gate for the request and exposes the
// current session, if any, to handlers and templates.
func GateMiddleware(scope session.Scope) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate := scope.Gate(c.GetString(VisitorIDKey))
		c.Set(GateKey, gate)

		if s, err := gate.CurrentSession(c.Request.Context()); err == nil {
			c.Set(SessionKey, s)
		}
		c.Next()
	}
}

// RequireAdmin lets the request through only with an authenticated session
// and otherwise redirects to the landing page.
func RequireAdmin(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate := GetGate(c)
		if gate == nil {
			logger.Error("No session gate in context", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		s, err := gate.CurrentSession(c.Request.Context())
		if errors.Is(err, models.ErrNotAuthenticated) {
			Redirect(c, "/")
			return
		}
		if err != nil {
			logger.Error("Failed to read session", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(SessionKey, s)
		c.Next()
	}
}

// GetGate returns the gate resolved for this request.
func GetGate(c *gin.Context) session.Gate {
	v, ok := c.Get(GateKey)
	if !ok {
		return nil
	}
	g, _ := v.(session.Gate)
	return g
}

// GetSession returns the request's session; the zero Session means nobody
// is logged in.
func GetSession(c *gin.Context) models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return models.Session{}
	}
	s, _ := v.(models.Session)
	return s
}
