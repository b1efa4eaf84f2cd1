package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
	"github.com/alyoshka-app/alyoshka/internal/domain/feed"
	"github.com/alyoshka-app/alyoshka/internal/domain/journal"
	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	almanacSvc almanac.Service
	feedSvc    feed.Service
	journalSvc journal.Service
	clubsSvc   clubs.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(almanacSvc almanac.Service, feedSvc feed.Service, journalSvc journal.Service, clubsSvc clubs.Service, logger *slog.Logger) *Handler {
	return &Handler{
		almanacSvc: almanacSvc,
		feedSvc:    feedSvc,
		journalSvc: journalSvc,
		clubsSvc:   clubsSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Home returns the three home screen cards for a date. A missing date means
// today, a malformed one is the only hard failure.
func (h *Handler) Home(c *gin.Context) {
	view, err := h.almanacSvc.Home(c.Request.Context(), almanac.Request{
		Date:   c.Query("date"),
		Region: c.Query("region"),
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "home_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, view)
}

// MonthCalendar returns the month document merged with its guides. Missing
// fixtures yield a placeholder with status 200, never a 404.
func (h *Handler) MonthCalendar(c *gin.Context) {
	view, err := h.almanacSvc.Month(c.Request.Context(), c.Query("month"))
	if err != nil {
		status := http.StatusInternalServerError
		code := "calendar_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.Header("Cache-Control", "public, max-age=600")
	c.JSON(http.StatusOK, view)
}

// GardenTips returns the tip list, optionally filtered by culture.
func (h *Handler) GardenTips(c *gin.Context) {
	tips, err := h.almanacSvc.Tips(c.Request.Context(), c.Query("culture"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "garden_failed", errMessage(err), err))
		return
	}

	c.Header("Cache-Control", "public, max-age=600")
	c.JSON(http.StatusOK, tips)
}

// Journal acknowledges a "mark done" entry.
func (h *Handler) Journal(c *gin.Context) {
	var req journal.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	ack, err := h.journalSvc.Record(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "journal_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, ack)
}

// Feed returns the curated article feed.
func (h *Handler) Feed(c *gin.Context) {
	articles, err := h.feedSvc.Articles(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "feed_failed", errMessage(err), err))
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, articles)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
