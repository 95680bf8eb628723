package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

type NewsHandler struct {
	service *service.NewsService
}

func NewNewsHandler(service *service.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) PublicList(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.PublicList(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list news")
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.List(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list news")
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	n, err := h.service.Get(r.Context(), id)
	return respond(w, http.StatusOK, n, err, "Could not load news")
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.NewsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	n, err := h.service.Create(r.Context(), req)
	return respond(w, http.StatusCreated, n, err, "Could not create news")
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.NewsPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	n, err := h.service.Update(r.Context(), id, patch)
	return respond(w, http.StatusOK, n, err, "Could not update news")
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.Delete(r.Context(), id), "Could not delete news")
}
