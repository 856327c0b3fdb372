package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the catalog collections as JSON.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Register mounts the collection endpoints on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/sport-types", serveList(h, "sport-types", h.repo.SportTypes))
	rg.GET("/trainers", serveList(h, "trainers", h.repo.Trainers))
	rg.GET("/courses", serveList(h, "courses", h.repo.Courses))
	rg.GET("/prices", serveList(h, "prices", h.repo.PricePackages))
	rg.GET("/testimonials", serveList(h, "testimonials", h.repo.Testimonials))
}

func serveList[T any](h *Handler, name string, load func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := load(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to load catalog collection", zap.String("collection", name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	}
}
