package contact

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youcan-kampfsport/website/internal/app/domain"
	"github.com/youcan-kampfsport/website/internal/app/models"
	"github.com/youcan-kampfsport/website/internal/app/observability/metrics"
	"github.com/youcan-kampfsport/website/internal/app/pages"
)

const formTitle = "Probetraining anfragen"

type Handler struct {
	*domain.BaseHandler
	service *Service
}

func NewHandler(base *domain.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

// Submit handles POST /kontakt and answers with a banner.
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	var in models.TrialRequestInput
	if err := c.ShouldBind(&in); err != nil {
		metrics.Get().RecordTrialRequest(ctx, "invalid")
		h.respond(c, http.StatusBadRequest, pages.Banner(pages.BannerError,
			"Die Anfrage konnte nicht gelesen werden.", "Bitte versuche es erneut.", nil))
		return
	}

	req, err := h.service.Submit(ctx, in)
	var verr *ValidationError
	switch {
	case err == nil:
		metrics.Get().RecordTrialRequest(ctx, "accepted")
		h.respond(c, http.StatusOK, pages.Banner(pages.BannerSuccess,
			"Danke, "+req.FirstName+"!",
			"Wir melden uns innerhalb von 24 Stunden bei dir, um dein kostenloses Probetraining zu vereinbaren.", nil))
	case errors.As(err, &verr):
		metrics.Get().RecordTrialRequest(ctx, "invalid")
		h.respond(c, http.StatusBadRequest, pages.Banner(pages.BannerError,
			"Bitte prüfe deine Angaben.", "", verr.Fields))
	case errors.Is(err, models.ErrSpam):
		metrics.Get().RecordTrialRequest(ctx, "spam")
		h.respond(c, http.StatusUnprocessableEntity, pages.Banner(pages.BannerError,
			"Deine Nachricht konnte nicht gesendet werden.", "Bitte ruf uns an oder schreib uns eine E-Mail.", nil))
	default:
		metrics.Get().RecordTrialRequest(ctx, "error")
		h.Logger.Error("Failed to submit trial request", zap.Error(err))
		h.respond(c, http.StatusInternalServerError, pages.Banner(pages.BannerError,
			"Da ist etwas schiefgelaufen.", "Bitte versuche es später noch einmal.", nil))
	}
}

// RateLimited answers a submission rejected by the rate limiter.
func (h *Handler) RateLimited(c *gin.Context) {
	metrics.Get().RecordTrialRequest(c.Request.Context(), "rate_limited")
	h.respond(c, http.StatusTooManyRequests, pages.Banner(pages.BannerWarning,
		"Zu viele Anfragen.", "Bitte warte ein paar Minuten, bevor du es erneut versuchst.", nil))
}

func (h *Handler) respond(c *gin.Context, status int, banner templ.Component) {
	h.RenderPageStatus(c, status, formTitle, "Kontakt", banner)
}
