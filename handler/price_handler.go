package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

type PriceHandler struct {
	service *service.PriceService
}

func NewPriceHandler(service *service.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

func (h *PriceHandler) PublicList(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.PublicList(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list prices")
}

func (h *PriceHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.List(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list prices")
}

func (h *PriceHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	p, err := h.service.Get(r.Context(), id)
	return respond(w, http.StatusOK, p, err, "Could not load price")
}

func (h *PriceHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.PriceRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	p, err := h.service.Create(r.Context(), req)
	return respond(w, http.StatusCreated, p, err, "Could not create price")
}

func (h *PriceHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.PricePatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	p, err := h.service.Update(r.Context(), id, patch)
	return respond(w, http.StatusOK, p, err, "Could not update price")
}

func (h *PriceHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.Delete(r.Context(), id), "Could not delete price")
}
