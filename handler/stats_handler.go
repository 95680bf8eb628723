package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/service"
)

type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.DashboardStats
// @Failure      401  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Router       /api/v1/dashboard/stats [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.Dashboard(r.Context())
	return respond(w, http.StatusOK, stats, err, "Could not load dashboard stats")
}
