package dto

import (
	userDTO "vidyalaya_backend/internals/features/users/user/dto"
)

/* ===================== Requests ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RefreshRequest carries the refresh token when it is not sent as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

/* ===================== Responses ===================== */

type TokenPairResponse struct {
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	User         *userDTO.UserResponse `json:"user,omitempty"`
}
