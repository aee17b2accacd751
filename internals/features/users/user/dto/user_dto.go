package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/users/user/model"
)

/* ===================== Requests ===================== */

type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=1,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email,max=255"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=owner admin teacher user"`
}

// ToModel leaves UserPassword empty; the service hashes before insert.
func (r *CreateUserRequest) ToModel(schoolID uuid.UUID) *model.UserModel {
	return &model.UserModel{
		UserSchoolID: schoolID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserRole:     r.UserRole,
		UserIsActive: true,
	}
}

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=1,max=100"`
	UserPassword *string `json:"user_password" validate:"omitempty,min=8,max=72"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=owner admin teacher user"`
	UserIsActive *bool   `json:"user_is_active" validate:"omitempty"`
}

// ApplyToModel skips the password; the service hashes and sets it.
func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}

/* ===================== Responses ===================== */

type UserResponse struct {
	UserID        string     `json:"user_id"`
	UserSchoolID  string     `json:"user_school_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID.String(),
		UserSchoolID:  m.UserSchoolID.String(),
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
		UserUpdatedAt: m.UserUpdatedAt,
	}
}

func NewUserResponses(ms []model.UserModel) []*UserResponse {
	out := make([]*UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewUserResponse(&ms[i]))
	}
	return out
}
