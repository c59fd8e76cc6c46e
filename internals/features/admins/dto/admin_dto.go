package dto

import (
	"time"

	"shkola_backend/internals/features/admins/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterAdminRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=160"`
	Password  string `json:"password"   validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateAdminRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,email,max=160"`
	Password  *string `json:"password"   validate:"omitempty,min=6"`
}

/* ========== RESPONSE DTO ========== */

type AdminResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAdminResponse(m *model.AdminModel) *AdminResponse {
	if m == nil {
		return nil
	}
	return &AdminResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *RegisterAdminRequest) ToModel(passwordHash string) *model.AdminModel {
	return &model.AdminModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  passwordHash,
	}
}

// ApplyToModel — частичное обновление (пароль хэшируется в контроллере)
func (r *UpdateAdminRequest) ApplyToModel(m *model.AdminModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}
