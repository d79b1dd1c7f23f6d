package sendcv

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-mailer/internal/delivery"
	"cv-mailer/internal/shared/metrics"
	"cv-mailer/internal/shared/server/middleware"
	"cv-mailer/internal/shared/server/respond"
	"cv-mailer/internal/shared/util"
	"cv-mailer/resume/model"
)

const maxBodySize = 1 << 20 // 1MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the send-cv route for every method; anything but
// POST is answered with 405.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Any("/send-cv", h.send)
}

func (h *Handler) send(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		respond.Error(c, http.StatusMethodNotAllowed, "Only POST allowed", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, fmt.Errorf("read body: %w", err))
		return
	}
	form, err := model.DecodeForm(raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set(middleware.StyleKey, string(form.SelectedStyle()))

	res, err := h.Svc.Send(c.Request.Context(), middleware.RequestIDFromContext(c), form)
	c.Set(middleware.OverflowKey, res.Overflow)
	if err != nil {
		var cfgErr *delivery.ConfigError
		var recErr *delivery.RecipientError
		switch {
		case errors.As(err, &cfgErr), errors.As(err, &recErr):
			metrics.IncRejected()
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.fail(c, err)
		}
		return
	}

	c.Set(middleware.RecipientHashKey, util.HashKey(res.Receipt.To))
	respond.OK(c, gin.H{"ok": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	metrics.IncFailed()
	respond.Error(c, http.StatusInternalServerError, "Server error", err.Error())
}
