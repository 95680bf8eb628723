package handler

import (
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

type TeamHandler struct {
	service *service.TeamService
}

func NewTeamHandler(service *service.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

func (h *TeamHandler) PublicTeam(w http.ResponseWriter, r *http.Request) *common.AppError {
	team, err := h.service.PublicTeam(r.Context())
	return respond(w, http.StatusOK, team, err, "Could not list team")
}

func (h *TeamHandler) ListPositions(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListPositions(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list positions")
}

func (h *TeamHandler) CreatePosition(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.PositionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	p, err := h.service.CreatePosition(r.Context(), req)
	return respond(w, http.StatusCreated, p, err, "Could not create position")
}

func (h *TeamHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.PositionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	p, err := h.service.UpdatePosition(r.Context(), id, req)
	return respond(w, http.StatusOK, p, err, "Could not update position")
}

func (h *TeamHandler) DeletePosition(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeletePosition(r.Context(), id), "Could not delete position")
}

func (h *TeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) *common.AppError {
	items, err := h.service.ListMembers(r.Context())
	return respond(w, http.StatusOK, items, err, "Could not list team members")
}

func (h *TeamHandler) GetMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	m, err := h.service.GetMember(r.Context(), id)
	return respond(w, http.StatusOK, m, err, "Could not load team member")
}

func (h *TeamHandler) CreateMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TeamMemberRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	m, err := h.service.CreateMember(r.Context(), req)
	return respond(w, http.StatusCreated, m, err, "Could not create team member")
}

func (h *TeamHandler) UpdateMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var patch model.TeamMemberPatch
	if appErr := common.ValidateAndDecode(r, &patch); appErr != nil {
		return appErr
	}
	m, err := h.service.UpdateMember(r.Context(), id, patch)
	return respond(w, http.StatusOK, m, err, "Could not update team member")
}

func (h *TeamHandler) DeleteMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	return noContent(w, h.service.DeleteMember(r.Context(), id), "Could not delete team member")
}
