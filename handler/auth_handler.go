package handler

import (
	"errors"
	"net/http"
	"wedding-api/common"
	"wedding-api/model"
	"wedding-api/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges a username and password for an access and a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      model.LoginRequest  true  "Credentials"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	pair, err := h.auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found", err)
	case errors.Is(err, service.ErrBadPassword):
		return common.NewAppError(http.StatusBadRequest, "Wrong password", err)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	common.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Refresh:     pair.RefreshToken,
		AccessToken: pair.AccessToken,
	})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes an access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        tokens  body      model.LogoutRequest  true  "Token pair"
// @Success      205  {object}  model.MessageResponse
// @Failure      400  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LogoutRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	err := h.auth.Logout(r.Context(), req.RefreshToken, req.AccessToken)
	switch {
	case errors.Is(err, service.ErrInvalidTokens):
		return common.NewAppError(http.StatusBadRequest, "Invalid tokens", err)
	case errors.Is(err, service.ErrTokensAlreadyRevoked):
		return common.NewAppError(http.StatusBadRequest, "Tokens already revoked", err)
	case err != nil:
		return common.NewAppError(http.StatusInternalServerError, "Could not revoke tokens", err)
	}

	common.WriteJSON(w, http.StatusResetContent, model.MessageResponse{Message: "Logged out successfully", OK: true})
	return nil
}
