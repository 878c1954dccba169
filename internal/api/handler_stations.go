package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"spbu-monitor-backend/internal/report"
)

// ListStations handles GET /api/stations.
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.store.ListStations(c.Request.Context())
	if err != nil {
		abortWithDialog(c, upstreamStatus(err), titleListFailed, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// GetStation handles GET /api/stations/:id. The sales and checklist tables
// are filtered by sales_month/sales_year and checklist_month/checklist_year.
func (h *Handler) GetStation(c *gin.Context) {
	id, err := stationID(c)
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, "Permintaan Tidak Valid", err)
		return
	}
	title := fmt.Sprintf(titleDetailFailed, id)

	salesPeriod, err := h.queryPeriod(c, "sales_month", "sales_year")
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, title, err)
		return
	}
	checklistPeriod, err := h.queryPeriod(c, "checklist_month", "checklist_year")
	if err != nil {
		abortWithDialog(c, http.StatusBadRequest, title, err)
		return
	}

	st, err := h.store.GetStation(c.Request.Context(), id)
	if err != nil {
		abortWithDialog(c, upstreamStatus(err), title, err)
		return
	}

	c.JSON(http.StatusOK, report.BuildDetailView(st, report.Options{
		SalesPeriod:     salesPeriod,
		ChecklistPeriod: checklistPeriod,
		Location:        h.loc,
	}))
}
