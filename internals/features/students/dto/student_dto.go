package dto

import (
	"time"

	"gorm.io/datatypes"

	"shkola_backend/internals/features/students/model"
	"shkola_backend/internals/helpers/dbtime"
)

/* ========== REQUEST DTOs ========== */

type RegisterStudentRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name"  validate:"required,max=100"`
	Email         string  `json:"email"      validate:"required,email,max=160"`
	Password      string  `json:"password"   validate:"required,min=6"`
	BirthDate     string  `json:"birth_date" validate:"required"`
	ParentContact *string `json:"parent_contact" validate:"omitempty,max=160"`
	ClassID       uint    `json:"class_id"   validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=100"`
	LastName      *string `json:"last_name"  validate:"omitempty,max=100"`
	Email         *string `json:"email"      validate:"omitempty,email,max=160"`
	Password      *string `json:"password"   validate:"omitempty,min=6"`
	BirthDate     *string `json:"birth_date"`
	ParentContact *string `json:"parent_contact" validate:"omitempty,max=160"`
	ClassID       *uint   `json:"class_id"`
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	BirthDate     string    `json:"birth_date"`
	ParentContact *string   `json:"parent_contact,omitempty"`
	ClassID       uint      `json:"class_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StudentLite — краткая форма для вложенных ответов
type StudentLite struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		BirthDate:     dbtime.FormatDate(m.BirthDate),
		ParentContact: m.ParentContact,
		ClassID:       m.ClassID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func NewStudentLite(m *model.StudentModel) *StudentLite {
	if m == nil {
		return nil
	}
	return &StudentLite{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}
}

func (r *RegisterStudentRequest) ToModel(passwordHash string, birthDate datatypes.Date) *model.StudentModel {
	return &model.StudentModel{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Password:      passwordHash,
		BirthDate:     birthDate,
		ParentContact: r.ParentContact,
		ClassID:       r.ClassID,
	}
}

// ApplyToModel переносит присланные поля; пароль и дата рождения
// обрабатываются в контроллере отдельно.
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.ParentContact != nil {
		m.ParentContact = r.ParentContact
	}
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
}
