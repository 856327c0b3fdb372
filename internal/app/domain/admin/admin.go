// Package admin renders the demo admin panel. Routes are mounted behind
// middleware.RequireAdmin, so every handler here sees an authenticated
// session.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/domain/catalog"
	"github.com/youcan-kampfsport/website/internal/app/middleware"
	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/app/pages"
)

// recentRequests caps the trial request list.
const recentRequests = 50

// RequestLister lists stored trial requests.
type RequestLister interface {
	Recent(ctx context.Context, limit int) ([]models.TrialRequest, error)
	Count(ctx context.Context) (int, error)
}

type AdminHandlers struct {
	*domain.BaseHandler
	catalog  *catalog.Service
	requests RequestLister
}

func NewAdminHandlers(base *domain.BaseHandler, catalog *catalog.Service, requests RequestLister) *AdminHandlers {
	return &AdminHandlers{BaseHandler: base, catalog: catalog, requests: requests}
}

// ShowPanel renders the whole panel with the tab from ?tab= selected.
func (h *AdminHandlers) ShowPanel(c *gin.Context) {
	tab := c.DefaultQuery("tab", pages.AdminTabs[0].Key)
	if _, ok := pages.LookupAdminTab(tab); !ok {
		tab = pages.AdminTabs[0].Key
	}
	content, err := h.tabContent(c.Request.Context(), tab)
	if err != nil {
		h.fail(c, tab, err)
		return
	}
	h.Render(c, http.StatusOK, "admin", pages.AdminPage(middleware.GetSession(c), tab, content))
}

// ShowTab renders the tab bar and one tab for htmx swaps.
func (h *AdminHandlers) ShowTab(c *gin.Context) {
	tab := c.Param("tab")
	content, err := h.tabContent(c.Request.Context(), tab)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "Unbekannter Bereich")
		return
	}
	if err != nil {
		h.fail(c, tab, err)
		return
	}
	h.Render(c, http.StatusOK, "admin_tab", pages.AdminBody(tab, content))
}

func (h *AdminHandlers) fail(c *gin.Context, tab string, err error) {
	h.Logger.Error("Failed to load admin tab", zap.String("tab", tab), zap.Error(err))
	c.String(http.StatusInternalServerError, "Die Daten konnten nicht geladen werden.")
}

func (h *AdminHandlers) tabContent(ctx context.Context, tab string) (templ.Component, error) {
	repo := h.catalog.Repository()
	switch tab {
	case "sportarten":
		items, err := repo.SportTypes(ctx)
		return pages.SportTypesTab(items), err
	case "trainer":
		items, err := repo.Trainers(ctx)
		return pages.TrainersTab(items), err
	case "kurse":
		items, err := repo.Courses(ctx)
		return pages.CoursesTab(items), err
	case "preise":
		items, err := repo.PricePackages(ctx)
		return pages.PricesTab(items), err
	case "bewertungen":
		items, err := repo.Testimonials(ctx)
		return pages.TestimonialsTab(items), err
	case "anfragen":
		items, err := h.requests.Recent(ctx, recentRequests)
		return pages.RequestsTab(items), err
	case "overview":
		snap, err := h.catalog.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		n, err := h.requests.Count(ctx)
		return pages.OverviewTab(snap, n), err
	default:
		return nil, fmt.Errorf("admin tab %q: %w", tab, models.ErrNotFound)
	}
}
