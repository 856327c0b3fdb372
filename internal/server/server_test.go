package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/pkg/config"
)

func fixtureConfig() *config.Config {
	return &config.Config{
		Session:       config.SessionConfig{Scope: config.SessionScopeApplication, TTL: time.Hour},
		Catalog:       config.CatalogConfig{Source: config.CatalogSourceFixtures},
		Contact:       config.ContactConfig{RateLimit: 3, RateWindow: time.Minute, StoreSize: 10},
		Observability: config.ObservabilityConfig{ServiceName: "youcan-website-test"},
		ServerPort:    "0",
	}
}

func TestNew_WithoutPostgres(t *testing.T) {
	srv, err := New(context.Background(), fixtureConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, srv.DBPool())
	srv.Close()
}

func TestSetupRouter_ServesPagesAndAssets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, app, err := SetupRouter(ctx, fixtureConfig(), nil, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app.CatalogSvc)

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/assets/js/site.js", http.StatusOK, "javascript"},
		{"/assets/css/site.css", http.StatusOK, "text/css"},
		{"/robots.txt", http.StatusOK, "text/plain"},
		{"/healthz", http.StatusOK, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
		})
	}
}

func TestHTTPServer(t *testing.T) {
	srv, err := New(context.Background(), fixtureConfig(), zap.NewNop())
	require.NoError(t, err)
	handler := http.NewServeMux()
	srv.SetRouter(handler)

	hs := srv.HTTPServer()
	assert.Equal(t, ":0", hs.Addr)
	assert.Equal(t, handler, hs.Handler)
	assert.Equal(t, 5*time.Second, hs.ReadHeaderTimeout)
}

func TestGracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	hs := &http.Server{Addr: "127.0.0.1:0"}

	go GracefulShutdown(ctx, zap.NewNop(), done, hs, nil)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not finish")
	}
}
