package dto

import (
	"time"

	"shkola_backend/internals/features/classes/model"
	studentDTO "shkola_backend/internals/features/students/dto"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
)

/* ========== REQUEST DTOs ========== */

type CreateClassRequest struct {
	Name           string `json:"name"             validate:"required,max=100"`
	ClassTeacherID uint   `json:"class_teacher_id" validate:"required"`
	AcademicYear   string `json:"academic_year"    validate:"required,max=20"`
}

type UpdateClassRequest struct {
	Name           *string `json:"name"             validate:"omitempty,max=100"`
	ClassTeacherID *uint   `json:"class_teacher_id"`
	AcademicYear   *string `json:"academic_year"    validate:"omitempty,max=20"`
}

/* ========== RESPONSE DTO ========== */

type ClassResponse struct {
	ID             uint                      `json:"id"`
	Name           string                    `json:"name"`
	ClassTeacherID uint                      `json:"class_teacher_id"`
	AcademicYear   string                    `json:"academic_year"`
	ClassTeacher   *teacherDTO.TeacherLite   `json:"class_teacher,omitempty"`
	Students       []*studentDTO.StudentLite `json:"students,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// ClassLite — краткая форма для вложенных ответов (расписание)
type ClassLite struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
}

func NewClassResponse(m *model.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	resp := &ClassResponse{
		ID:             m.ID,
		Name:           m.Name,
		ClassTeacherID: m.ClassTeacherID,
		AcademicYear:   m.AcademicYear,
		ClassTeacher:   teacherDTO.NewTeacherLite(m.ClassTeacher),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if len(m.Students) > 0 {
		resp.Students = make([]*studentDTO.StudentLite, 0, len(m.Students))
		for i := range m.Students {
			resp.Students = append(resp.Students, studentDTO.NewStudentLite(&m.Students[i]))
		}
	}
	return resp
}

func NewClassLite(m *model.ClassModel) *ClassLite {
	if m == nil {
		return nil
	}
	return &ClassLite{
		ID:           m.ID,
		Name:         m.Name,
		AcademicYear: m.AcademicYear,
	}
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		Name:           r.Name,
		ClassTeacherID: r.ClassTeacherID,
		AcademicYear:   r.AcademicYear,
	}
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.ClassTeacherID != nil {
		m.ClassTeacherID = *r.ClassTeacherID
	}
	if r.AcademicYear != nil {
		m.AcademicYear = *r.AcademicYear
	}
}
