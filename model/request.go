// file: model/request.go

package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse keeps the field names existing clients rely on.
type LoginResponse struct {
	Refresh     string `json:"refresh"`
	AccessToken string `json:"access_token"`
}

// LogoutRequest carries the token pair to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	AccessToken  string `json:"access_token" validate:"required"`
}

// CreateUserRequest is used by the provisioning command.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,strongpassword"`
	Role     Role   `json:"role" validate:"required,oneof=admin member"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
	OK      bool   `json:"ok,omitempty"`
}
