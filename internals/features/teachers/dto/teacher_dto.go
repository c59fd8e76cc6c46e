package dto

import (
	"time"

	"shkola_backend/internals/features/teachers/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterTeacherRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name"  validate:"required,max=100"`
	Email     string  `json:"email"      validate:"required,email,max=160"`
	Password  string  `json:"password"   validate:"required,min=6"`
	Phone     *string `json:"phone"      validate:"omitempty,max=32"`
	Room      *string `json:"room"       validate:"omitempty,max=32"`
	Subject   string  `json:"subject"    validate:"required,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateTeacherRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,email,max=160"`
	Password  *string `json:"password"   validate:"omitempty,min=6"`
	Phone     *string `json:"phone"      validate:"omitempty,max=32"`
	Room      *string `json:"room"       validate:"omitempty,max=32"`
	Subject   *string `json:"subject"    validate:"omitempty,max=120"`
}

/* ========== RESPONSE DTO ========== */

type TeacherResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Room      *string   `json:"room,omitempty"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeacherLite — краткая форма для вложенных ответов (расписание, классы, события)
type TeacherLite struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

func NewTeacherResponse(m *model.TeacherModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	return &TeacherResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Room:      m.Room,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewTeacherLite(m *model.TeacherModel) *TeacherLite {
	if m == nil {
		return nil
	}
	return &TeacherLite{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Subject:   m.Subject,
	}
}

func (r *RegisterTeacherRequest) ToModel(passwordHash string) *model.TeacherModel {
	return &model.TeacherModel{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  passwordHash,
		Phone:     r.Phone,
		Room:      r.Room,
		Subject:   r.Subject,
	}
}

func (r *UpdateTeacherRequest) ApplyToModel(m *model.TeacherModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Room != nil {
		m.Room = r.Room
	}
	if r.Subject != nil {
		m.Subject = *r.Subject
	}
}
