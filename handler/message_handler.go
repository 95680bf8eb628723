package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

// MessageHandler serves the contact form and its dashboard inbox.
type MessageHandler struct {
	service *service.MessageService
}

func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// ContactUs godoc
// @Summary      Send a message to the venue
// @Tags         web
// @Accept       json
// @Produce      json
// @Param        message  body      model.ContactRequest  true  "Message"
// @Success      201  {object}  model.Message
// @Failure      400  {object}  common.AppError
// @Router       /api/v1/web/contact_us [post]
func (h *MessageHandler) ContactUs(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ContactRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	m, err := h.service.Submit(r.Context(), req)
	return respond(w, http.StatusCreated, m, err, "Could not send message")
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.List(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list messages")
}

func (h *MessageHandler) Unanswered(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.Unanswered(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list messages")
}

func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	m, err := h.service.Get(r.Context(), id)
	return respond(w, http.StatusOK, m, err, "Could not load message")
}

func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.MessagePatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	m, err := h.service.Update(r.Context(), id, patch)
	return respond(w, http.StatusOK, m, err, "Could not update message")
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.Delete(r.Context(), id), "Could not delete message")
}
