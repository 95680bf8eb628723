package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

// PageHandler serves the single-row pages: the landing hero and about us.
type PageHandler struct {
	service *service.PageService
}

func NewPageHandler(service *service.PageService) *PageHandler {
	return &PageHandler{service: service}
}

// HomePage godoc
// @Summary      Landing page hero block
// @Tags         web
// @Produce      json
// @Success      200  {object}  model.HomePage
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/web/main_page [get]
func (h *PageHandler) HomePage(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, err := h.service.HomePage(r.Context())
	return respond(w, http.StatusOK, page, err, "Could not load home page")
}

func (h *PageHandler) SaveHomePage(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.HomePageRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	page, err := h.service.SaveHomePage(r.Context(), req)
	return respond(w, http.StatusOK, page, err, "Could not save home page")
}

func (h *PageHandler) AboutUs(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, err := h.service.AboutUs(r.Context())
	return respond(w, http.StatusOK, page, err, "Could not load about us")
}

func (h *PageHandler) AboutUsDetails(w http.ResponseWriter, r *http.Request) *common.AppError {
	details, err := h.service.AboutUsDetails(r.Context())
	return respond(w, http.StatusOK, details, err, "Could not load about us")
}

func (h *PageHandler) SaveAboutUs(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AboutUsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	page, err := h.service.SaveAboutUs(r.Context(), req)
	return respond(w, http.StatusOK, page, err, "Could not save about us")
}
