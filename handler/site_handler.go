package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

// SiteHandler serves social media links and the contact settings.
type SiteHandler struct {
	service *service.SiteService
}

func NewSiteHandler(service *service.SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

func (h *SiteHandler) PublicSocialMedia(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.PublicSocialMedia(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list social media")
}

func (h *SiteHandler) ContactInfo(w http.ResponseWriter, r *http.Request) *common.AppError {
	info, err := h.service.ContactInfo(r.Context())
	return respond(w, http.StatusOK, info, err, "Could not load contact info")
}

func (h *SiteHandler) ContactInfoFooter(w http.ResponseWriter, r *http.Request) *common.AppError {
	info, err := h.service.ContactInfoFooter(r.Context())
	return respond(w, http.StatusOK, info, err, "Could not load contact info")
}

func (h *SiteHandler) ListSocialMedia(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListSocialMedia(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list social media")
}

func (h *SiteHandler) CreateSocialMedia(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SocialMediaRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	sm, err := h.service.CreateSocialMedia(r.Context(), req)
	return respond(w, http.StatusCreated, sm, err, "Could not create social media link")
}

func (h *SiteHandler) UpdateSocialMedia(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.SocialMediaPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	sm, err := h.service.UpdateSocialMedia(r.Context(), id, patch)
	return respond(w, http.StatusOK, sm, err, "Could not update social media link")
}

func (h *SiteHandler) DeleteSocialMedia(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteSocialMedia(r.Context(), id), "Could not delete social media link")
}

func (h *SiteHandler) ListWebSettings(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListWebSettings(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list web settings")
}

func (h *SiteHandler) CreateWebSettings(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.WebSettingsRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	ws, err := h.service.CreateWebSettings(r.Context(), req)
	return respond(w, http.StatusCreated, ws, err, "Could not create web settings")
}

func (h *SiteHandler) UpdateWebSettings(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.WebSettingsPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	ws, err := h.service.UpdateWebSettings(r.Context(), id, patch)
	return respond(w, http.StatusOK, ws, err, "Could not update web settings")
}

func (h *SiteHandler) DeleteWebSettings(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteWebSettings(r.Context(), id), "Could not delete web settings")
}
