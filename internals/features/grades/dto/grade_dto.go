package dto

import (
	"time"

	"gorm.io/datatypes"

	"shkola_backend/internals/features/grades/model"
	studentDTO "shkola_backend/internals/features/students/dto"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
	"shkola_backend/internals/helpers/dbtime"
)

/* ========== REQUEST DTOs ========== */

type CreateGradeRequest struct {
	StudentID  uint    `json:"student_id"  validate:"required"`
	TeacherID  uint    `json:"teacher_id"  validate:"required"`
	GradeValue float64 `json:"grade_value" validate:"required,min=1,max=5"`
	Date       string  `json:"date"        validate:"required"`
}

type UpdateGradeRequest struct {
	StudentID  *uint    `json:"student_id"`
	TeacherID  *uint    `json:"teacher_id"`
	GradeValue *float64 `json:"grade_value" validate:"omitempty,min=1,max=5"`
	Date       *string  `json:"date"`
}

/* ========== RESPONSE DTO ========== */

type GradeResponse struct {
	ID         uint                      `json:"id"`
	StudentID  uint                      `json:"student_id"`
	TeacherID  uint                      `json:"teacher_id"`
	GradeValue float64                   `json:"grade_value"`
	Date       string                    `json:"date"`
	Student    *studentDTO.StudentLite   `json:"student,omitempty"`
	Teacher    *teacherDTO.TeacherLite   `json:"teacher,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

func NewGradeResponse(m *model.GradeModel) *GradeResponse {
	if m == nil {
		return nil
	}
	return &GradeResponse{
		ID:         m.ID,
		StudentID:  m.StudentID,
		TeacherID:  m.TeacherID,
		GradeValue: m.GradeValue,
		Date:       dbtime.FormatDate(m.Date),
		Student:    studentDTO.NewStudentLite(m.Student),
		Teacher:    teacherDTO.NewTeacherLite(m.Teacher),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *CreateGradeRequest) ToModel(date datatypes.Date) *model.GradeModel {
	return &model.GradeModel{
		StudentID:  r.StudentID,
		TeacherID:  r.TeacherID,
		GradeValue: r.GradeValue,
		Date:       date,
	}
}

// ApplyToModel переносит присланные поля; дата обрабатывается в контроллере.
func (r *UpdateGradeRequest) ApplyToModel(m *model.GradeModel) {
	if r.StudentID != nil {
		m.StudentID = *r.StudentID
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.GradeValue != nil {
		m.GradeValue = *r.GradeValue
	}
}
