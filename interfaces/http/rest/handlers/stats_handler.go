package handlers

import (
	"net/http"

	"storefront-backend/application/services"
	"storefront-backend/pkg/common"
	pkgerrors "storefront-backend/pkg/errors"

	"go.uber.org/zap"
)

// StatsHandler serves the admin dashboard aggregates
type StatsHandler struct {
	stats  *services.StatsService
	errs   *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewStatsHandler creates a new dashboard statistics handler
func NewStatsHandler(stats *services.StatsService, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		errs:   errs,
		logger: logger,
	}
}

// DashboardStats handles GET /dashboard/stats
func (h *StatsHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.DashboardSummary(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, stats)
}

// PieCharts handles GET /dashboard/pie
func (h *StatsHandler) PieCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.stats.PieChartData(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, charts)
}

// BarCharts handles GET /dashboard/bar
func (h *StatsHandler) BarCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.stats.BarChartData(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, charts)
}

// LineCharts handles GET /dashboard/line
func (h *StatsHandler) LineCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.stats.LineChartData(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, charts)
}
