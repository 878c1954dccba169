package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/mw"
	"spbu-monitor-backend/internal/report"
	"spbu-monitor-backend/internal/store"
	"spbu-monitor-backend/internal/upstream"
)

// Dialog titles shown by the dashboard when a request fails.
const (
	titleListFailed   = "Gagal Memuat Daftar SPBU"
	titleDetailFailed = "Gagal Memuat Detail SPBU %d"
	titleExportFailed = "Gagal Mengekspor PDF"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	exporter *export.Exporter
	loc      *time.Location
	now      func() time.Time
}

// NewHandler creates a new API handler. Dates are interpreted in the
// exporter's timezone.
func NewHandler(s store.Store, e *export.Exporter) *Handler {
	return &Handler{
		store:    s,
		exporter: e,
		loc:      e.Location(),
		now:      time.Now,
	}
}

// abortWithDialog writes the error body rendered as a dialog by the dashboard.
func abortWithDialog(c *gin.Context, status int, title string, err error) {
	mw.Logger(c).WithError(err).Warn(title)
	c.AbortWithStatusJSON(status, gin.H{
		"title": title,
		"error": upstream.Message(err),
	})
}

// upstreamStatus maps an upstream failure to the status returned to the dashboard.
func upstreamStatus(err error) int {
	if errors.Is(err, upstream.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func stationID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid station ID %q", c.Param("id"))
	}
	return id, nil
}

// queryPeriod reads a month/year pair from the query string. Missing values
// default to the current month in the handler's timezone.
func (h *Handler) queryPeriod(c *gin.Context, monthKey, yearKey string) (report.Period, error) {
	current := report.CurrentPeriod(h.now().In(h.loc))
	month, year := int(current.Month), current.Year

	if v := c.Query(monthKey); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return report.Period{}, fmt.Errorf("invalid %s %q", monthKey, v)
		}
		month = m
	}
	if v := c.Query(yearKey); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return report.Period{}, fmt.Errorf("invalid %s %q", yearKey, v)
		}
		year = y
	}
	return report.NewPeriod(month, year)
}
