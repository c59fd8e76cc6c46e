package dto

import (
	"time"

	classDTO "shkola_backend/internals/features/classes/dto"
	"shkola_backend/internals/features/schedules/model"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
)

/* ========== REQUEST DTOs ========== */

type CreateScheduleRequest struct {
	ClassID      uint   `json:"class_id"      validate:"required"`
	TeacherID    uint   `json:"teacher_id"    validate:"required"`
	DayOfWeek    int    `json:"day_of_week"   validate:"required,min=1,max=7"`
	LessonNumber int    `json:"lesson_number" validate:"required,min=1,max=12"`
	Classroom    string `json:"classroom"     validate:"required,max=50"`
}

type UpdateScheduleRequest struct {
	ClassID      *uint   `json:"class_id"`
	TeacherID    *uint   `json:"teacher_id"`
	DayOfWeek    *int    `json:"day_of_week"   validate:"omitempty,min=1,max=7"`
	LessonNumber *int    `json:"lesson_number" validate:"omitempty,min=1,max=12"`
	Classroom    *string `json:"classroom"     validate:"omitempty,max=50"`
}

/* ========== RESPONSE DTO ========== */

type ScheduleResponse struct {
	ID           uint                    `json:"id"`
	ClassID      uint                    `json:"class_id"`
	TeacherID    uint                    `json:"teacher_id"`
	DayOfWeek    int                     `json:"day_of_week"`
	LessonNumber int                     `json:"lesson_number"`
	Classroom    string                  `json:"classroom"`
	Class        *classDTO.ClassLite     `json:"class,omitempty"`
	Teacher      *teacherDTO.TeacherLite `json:"teacher,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ScheduleLite — краткая форма для вложенных ответов (посещаемость)
type ScheduleLite struct {
	ID           uint `json:"id"`
	ClassID      uint `json:"class_id"`
	DayOfWeek    int  `json:"day_of_week"`
	LessonNumber int  `json:"lesson_number"`
}

func NewScheduleResponse(m *model.ScheduleModel) *ScheduleResponse {
	if m == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:           m.ID,
		ClassID:      m.ClassID,
		TeacherID:    m.TeacherID,
		DayOfWeek:    m.DayOfWeek,
		LessonNumber: m.LessonNumber,
		Classroom:    m.Classroom,
		Class:        classDTO.NewClassLite(m.Class),
		Teacher:      teacherDTO.NewTeacherLite(m.Teacher),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewScheduleLite(m *model.ScheduleModel) *ScheduleLite {
	if m == nil {
		return nil
	}
	return &ScheduleLite{
		ID:           m.ID,
		ClassID:      m.ClassID,
		DayOfWeek:    m.DayOfWeek,
		LessonNumber: m.LessonNumber,
	}
}

func (r *CreateScheduleRequest) ToModel() *model.ScheduleModel {
	return &model.ScheduleModel{
		ClassID:      r.ClassID,
		TeacherID:    r.TeacherID,
		DayOfWeek:    r.DayOfWeek,
		LessonNumber: r.LessonNumber,
		Classroom:    r.Classroom,
	}
}

func (r *UpdateScheduleRequest) ApplyToModel(m *model.ScheduleModel) {
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.DayOfWeek != nil {
		m.DayOfWeek = *r.DayOfWeek
	}
	if r.LessonNumber != nil {
		m.LessonNumber = *r.LessonNumber
	}
	if r.Classroom != nil {
		m.Classroom = *r.Classroom
	}
}
