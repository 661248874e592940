package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/skyweather/internal/services/weather"
	"github.com/Nazarious-ucu/skyweather/internal/surface"
	"github.com/Nazarious-ucu/skyweather/internal/validator"
	"github.com/Nazarious-ucu/skyweather/internal/widget"
)

const defaultSearchTimeout = 10 * time.Second

type widgetController interface {
	Search(ctx context.Context, city string) error
	ToggleTheme()
	ToggleMute()
	Interact()
}

type snapshotter interface {
	Snapshot() surface.Snapshot
}

type Handler struct {
	widget        widgetController
	page          snapshotter
	searchTimeout time.Duration
	logger        zerolog.Logger
}

func NewHandler(w widgetController, page snapshotter, searchTimeout time.Duration, logger zerolog.Logger) *Handler {
	if searchTimeout <= 0 {
		searchTimeout = defaultSearchTimeout
	}
	return &Handler{widget: w, page: page, searchTimeout: searchTimeout, logger: logger}
}

type searchRequest struct {
	City string `json:"city" form:"city"`
}

type widgetResponse struct {
	Error  string           `json:"error,omitempty"`
	Widget surface.Snapshot `json:"widget"`
}

// Register mounts the widget API. Every POST counts as a user gesture.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/widget", h.GetWidget)

	actions := api.Group("", h.Gesture())
	actions.POST("/search", h.Search)
	actions.POST("/theme/toggle", h.ToggleTheme)
	actions.POST("/audio/toggle", h.ToggleAudio)
	actions.POST("/interaction", h.Interaction)
}

func (h *Handler) GetWidget(c *gin.Context) {
	c.JSON(http.StatusOK, widgetResponse{Widget: h.page.Snapshot()})
}

func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.City == "" {
		req.City = c.Query("city")
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), h.searchTimeout)
	defer cancel()

	err := h.widget.Search(ctxWithTimeout, req.City)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			zerolog.Ctx(c.Request.Context()).Error().
				Err(err).
				Str("city", req.City).
				Msg("weather lookup failed")
		}
		c.JSON(status, widgetResponse{Error: widget.UserMessage(err), Widget: h.page.Snapshot()})
		return
	}

	c.JSON(http.StatusOK, widgetResponse{Widget: h.page.Snapshot()})
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	h.widget.ToggleTheme()
	c.JSON(http.StatusOK, widgetResponse{Widget: h.page.Snapshot()})
}

func (h *Handler) ToggleAudio(c *gin.Context) {
	h.widget.ToggleMute()
	c.JSON(http.StatusOK, widgetResponse{Widget: h.page.Snapshot()})
}

// Interaction only needs the gesture middleware.
func (h *Handler) Interaction(c *gin.Context) {
	c.JSON(http.StatusOK, widgetResponse{Widget: h.page.Snapshot()})
}

func (h *Handler) Gesture() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.widget.Interact()
		c.Next()
	}
}

func statusFor(err error) int {
	var invalid *validator.ValidationError
	switch {
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, widget.ErrSearchInProgress):
		return http.StatusConflict
	case weather.IsKind(err, weather.KindNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
