package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Scope:         config.SessionScopeApplication,
			TTL:           time.Hour,
			VisitorSecret: strings.Repeat("v", 32),
		},
		Catalog: config.CatalogConfig{Source: config.CatalogSourceFixtures},
		Contact: config.ContactConfig{RateLimit: 3, RateWindow: time.Minute, StoreSize: 10},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	_, err := Setup(ctx, r, cfg, nil, zap.NewNop())
	require.NoError(t, err)
	return r
}

type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, target string, body url.Values, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func TestAdminSessionFlow(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t, testConfig())}

	w := c.do(http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = c.do(http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, w.Body.String())

	w = c.do(http.MethodPost, "/admin/login", url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = c.do(http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "Willkommen, Admin User", doc.Find("#admin-welcome").Text())

	w = c.do(http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["authenticated"])

	w = c.do(http.MethodPost, "/admin/logout", url.Values{}, "HX-Request", "true")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/", w.Header().Get("HX-Redirect"))

	w = c.do(http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = c.do(http.MethodGet, "/admin/tabs/kurse", nil, "HX-Request", "true")
	assert.Equal(t, "/", w.Header().Get("HX-Redirect"))
}

func TestApplicationScopeIsShared(t *testing.T) {
	r := newTestRouter(t, testConfig())
	alice := &client{t: t, r: r}
	bob := &client{t: t, r: r}

	alice.do(http.MethodPost, "/admin/login", url.Values{})
	w := bob.do(http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVisitorScopeIsolatesBrowsers(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Scope = config.SessionScopeVisitor
	r := newTestRouter(t, cfg)
	alice := &client{t: t, r: r}
	bob := &client{t: t, r: r}

	w := alice.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, alice.cookies)
	assert.Equal(t, middleware.VisitorCookie, alice.cookies[0].Name)

	alice.do(http.MethodPost, "/admin/login", url.Values{})
	assert.Equal(t, http.StatusOK, alice.do(http.MethodGet, "/api/session", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, bob.do(http.MethodGet, "/api/session", nil).Code)
	assert.Equal(t, http.StatusFound, bob.do(http.MethodGet, "/admin", nil).Code)
}

func TestLoginPromptFragmentAndPage(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t, testConfig())}

	w := c.do(http.MethodGet, "/admin/login", nil, "HX-Request", "true")
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("#login-prompt").Length())
	assert.Equal(t, 0, doc.Find("#navbar").Length())

	w = c.do(http.MethodGet, "/admin/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc, err = goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("#modal #login-prompt").Length())
	assert.Equal(t, 1, doc.Find("#navbar").Length())
}

func TestCatalogAPI(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t, testConfig())}

	w := c.do(http.MethodGet, "/api/prices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prices []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
	assert.Len(t, prices, 3)

	w = c.do(http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var courses []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	assert.Len(t, courses, 8)
}

func TestContactRateLimit(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t, testConfig())}
	form := url.Values{
		"first_name": {"Max"},
		"last_name":  {"Mustermann"},
		"email":      {"max@example.com"},
		"discipline": {"Karate"},
	}

	for i := 0; i < 3; i++ {
		w := c.do(http.MethodPost, "/kontakt", form, "HX-Request", "true")
		require.Equal(t, http.StatusOK, w.Code, "submission %d", i)
	}
	w := c.do(http.MethodPost, "/kontakt", form, "HX-Request", "true")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Zu viele Anfragen.")
}

func TestNotFoundAndHealth(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t, testConfig())}

	w := c.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("button#admin-access").Length())
}

func TestSetupRejectsPostgresWithoutPool(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Source = config.CatalogSourcePostgres
	_, err := Setup(context.Background(), gin.New(), cfg, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestSetupWithZeroRateWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Contact.RateWindow = 0
	cfg.Contact.RateLimit = 1
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	app, err := Setup(ctx, r, cfg, nil, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, app.RateLimiter.Allow("203.0.113.7"))
	assert.False(t, app.RateLimiter.Allow("203.0.113.7"), "requests still count inside the fallback window")
}
