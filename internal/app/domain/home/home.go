package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/domain/catalog"
	"github.com/youcan-kampfsport/website/internal/app/pages"
)

const pageTitle = "YOU Can Kampfsportschule Lüdenscheid"

type HomeHandlers struct {
	*domain.BaseHandler
	catalog *catalog.Service
}

func NewHomeHandlers(base *domain.BaseHandler, catalog *catalog.Service) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base, catalog: catalog}
}

func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	snap, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to load landing page content", zap.Error(err))
		c.String(http.StatusInternalServerError, "Die Seite ist gerade nicht verfügbar.")
		return
	}
	h.RenderPage(c, pageTitle, "", pages.HomePage(snap))
}
