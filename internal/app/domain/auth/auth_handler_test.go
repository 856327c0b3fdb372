package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/domain/catalog"
	"github.com/youcan-kampfsport/website/internal/app/domain/session"
	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/app/models"
)

func newAuthRouter(t *testing.T, gate session.Gate) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo, err := catalog.NewFixtureRepository()
	require.NoError(t, err)

	h := NewAuthHandlers(domain.NewBaseHandler(zap.NewNop()), catalog.NewService(repo, zap.NewNop()))
	r := gin.New()
	r.Use(middleware.GateMiddleware(session.NewApplicationScope(gate)))
	r.GET("/admin/login", h.LoginPrompt)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
	r.GET("/api/session", h.CurrentSession)
	return r
}

func serve(r http.Handler, method, target string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginLogoutScenario(t *testing.T) {
	gate := session.NewPlaceholderGate(zap.NewNop())
	r := newAuthRouter(t, gate)

	w := serve(r, http.MethodGet, "/api/session", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, w.Body.String())

	w = serve(r, http.MethodPost, "/admin/login", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("HX-Redirect"))

	w = serve(r, http.MethodGet, "/api/session", false)
	require.Equal(t, http.StatusOK, w.Code)
	var s models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.True(t, s.Authenticated)
	require.NotNil(t, s.Identity)
	assert.Equal(t, "Admin User", s.Identity.DisplayName)
	assert.Equal(t, models.RoleAdmin, s.Identity.Role)

	w = serve(r, http.MethodPost, "/admin/logout", false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	_, err := gate.CurrentSession(context.Background())
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestLoginPrompt(t *testing.T) {
	t.Run("htmx gets the dialog only", func(t *testing.T) {
		w := serve(newAuthRouter(t, session.NewPlaceholderGate(nil)), http.MethodGet, "/admin/login", true)
		require.Equal(t, http.StatusOK, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("#login-prompt").Length())
		assert.Equal(t, 0, doc.Find("#kampfsport").Length())
	})

	t.Run("plain request gets the landing page with the dialog open", func(t *testing.T) {
		w := serve(newAuthRouter(t, session.NewPlaceholderGate(nil)), http.MethodGet, "/admin/login", false)
		require.Equal(t, http.StatusOK, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("#modal #login-prompt").Length())
		assert.Equal(t, 1, doc.Find("#kampfsport").Length())
	})

	t.Run("logged in admin goes to the panel", func(t *testing.T) {
		gate := session.NewPlaceholderGate(nil)
		_, err := gate.Login(context.Background())
		require.NoError(t, err)
		w := serve(newAuthRouter(t, gate), http.MethodGet, "/admin/login", false)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
	})
}

type failingGate struct{}

func (failingGate) Login(context.Context) (models.Session, error) {
	return models.Session{}, errors.New("gate offline")
}

func (failingGate) Logout(context.Context) error { return errors.New("gate offline") }

func (failingGate) CurrentSession(context.Context) (models.Session, error) {
	return models.Session{}, errors.New("gate offline")
}

func TestGateFailures(t *testing.T) {
	r := newAuthRouter(t, failingGate{})

	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPost, "/admin/login", false).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPost, "/admin/logout", false).Code)

	w := serve(r, http.MethodGet, "/api/session", false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"session unavailable"}`, w.Body.String())
}
