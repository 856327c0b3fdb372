package domain

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/app/observability/metrics"
	"github.com/youcan-kampfsport/website/internal/app/pages"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) newLayoutData(c *gin.Context, title, activeNav string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.SiteNav,
		ActiveNav: activeNav,
		Session:   middleware.GetSession(c),
	}
}

// Render writes component with status and records how long rendering took.
func (h *BaseHandler) Render(c *gin.Context, status int, name string, component templ.Component) {
	start := time.Now()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("component", name), zap.Error(err))
		_ = c.Error(err)
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("component", name)))
}

// RenderPage renders content alone for htmx requests and wrapped in the site
// layout otherwise.
func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	h.RenderPageStatus(c, http.StatusOK, title, activeNav, content)
}

func (h *BaseHandler) RenderPageStatus(c *gin.Context, status int, title, activeNav string, content templ.Component) {
	if middleware.IsHTMX(c) {
		h.Render(c, status, title, content)
		return
	}
	h.Render(c, status, title, pages.LayoutPage(h.newLayoutData(c, title, activeNav, content)))
}

// RenderWithModal renders the landing layout with modal opened on top.
func (h *BaseHandler) RenderWithModal(c *gin.Context, title string, content, modal templ.Component) {
	data := h.newLayoutData(c, title, "", content)
	data.Modal = modal
	h.Render(c, http.StatusOK, title, pages.LayoutPage(data))
}

// NotFound renders the 404 page.
func (h *BaseHandler) NotFound(c *gin.Context) {
	data := h.newLayoutData(c, "Seite nicht gefunden", "", pages.NotFoundPage())
	h.Render(c, http.StatusNotFound, "not_found", pages.LayoutPage(data))
}
