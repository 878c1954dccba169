package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/report"
)

const pdfContentType = "application/pdf"

// ExportStation handles GET /api/stations/:id/export: the complete report.
func (h *Handler) ExportStation(c *gin.Context) {
	id, err := stationID(c)
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, titleExportFailed, err)
		return
	}

	f, err := h.exporter.Station(c.Request.Context(), id, "", report.Options{})
	if err != nil {
		abortWithDialog(c, upstreamStatus(err), titleExportFailed, err)
		return
	}
	sendPDF(c, f)
}

// ExportTab handles GET /api/stations/:id/export/:tab. The month and year
// query parameters select the period of the ringkasan and checklist tabs.
func (h *Handler) ExportTab(c *gin.Context) {
	id, err := stationID(c)
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, titleExportFailed, err)
		return
	}
	tab, err := report.ParseTab(c.Param("tab"))
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, titleExportFailed, err)
		return
	}
	period, err := h.queryPeriod(c, "month", "year")
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, titleExportFailed, err)
		return
	}

	opts := report.Options{SalesPeriod: period, ChecklistPeriod: period, Location: h.loc}
	f, err := h.exporter.Station(c.Request.Context(), id, tab, opts)
	if err != nil {
		abortWithDialog(c, upstreamStatus(err), titleExportFailed, err)
		return
	}
	sendPDF(c, f)
}

func sendPDF(c *gin.Context, f *export.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, pdfContentType, f.Data)
}
