package handler

import (
	"net/http"
	"strconv"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

type QRCodeHandler struct {
	service *service.QRCodeService
}

func NewQRCodeHandler(service *service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{service: service}
}

func (h *QRCodeHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.List(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list QR codes")
}

func (h *QRCodeHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	q, err := h.service.Get(r.Context(), id)
	return respond(w, http.StatusOK, q, err, "Could not load QR code")
}

func (h *QRCodeHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.QRCodeRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	q, err := h.service.Create(r.Context(), req)
	return respond(w, http.StatusCreated, q, err, "Could not create QR code")
}

func (h *QRCodeHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.QRCodeRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	q, err := h.service.Update(r.Context(), id, req)
	return respond(w, http.StatusOK, q, err, "Could not update QR code")
}

func (h *QRCodeHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.Delete(r.Context(), id), "Could not delete QR code")
}

// Image godoc
// @Summary      QR code image
// @Tags         dashboard
// @Produce      png
// @Security     BearerAuth
// @Param        id   path      int  true  "QR code ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/dashboard/qr_codes/{id}/image [get]
func (h *QRCodeHandler) Image(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	png, err := h.service.Image(r.Context(), id)
	if err != nil {
		return storageError(err, "Could not render QR code")
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
	return nil
}
