package dto

import (
	"time"

	"shkola_backend/internals/features/events/model"
	studentDTO "shkola_backend/internals/features/students/dto"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
)

/* ========== REQUEST DTOs ========== */

type CreateEventRequest struct {
	Title         string  `json:"title"          validate:"required,max=200"`
	Description   *string `json:"description"`
	EventDate     string  `json:"event_date"     validate:"required"`
	OrganizerID   uint    `json:"organizer_id"   validate:"required"`
	OrganizerType string  `json:"organizer_type" validate:"required"`
	StudentIDs    []uint  `json:"student_ids"`
	TeacherIDs    []uint  `json:"teacher_ids"`
}

func (r *CreateEventRequest) Organizer() model.Organizer {
	return model.Organizer{Type: r.OrganizerType, ID: r.OrganizerID}
}

type UpdateEventRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Description   *string `json:"description"`
	EventDate     *string `json:"event_date"`
	OrganizerID   *uint   `json:"organizer_id"`
	OrganizerType *string `json:"organizer_type"`
	StudentIDs    []uint  `json:"student_ids"`
	TeacherIDs    []uint  `json:"teacher_ids"`
}

/* ========== RESPONSE DTO ========== */

type EventResponse struct {
	ID            uint                      `json:"id"`
	Title         string                    `json:"title"`
	Description   *string                   `json:"description,omitempty"`
	EventDate     time.Time                 `json:"event_date"`
	OrganizerID   uint                      `json:"organizer_id"`
	OrganizerType string                    `json:"organizer_type"`
	Students      []*studentDTO.StudentLite `json:"students,omitempty"`
	Teachers      []*teacherDTO.TeacherLite `json:"teachers,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func NewEventResponse(m *model.EventModel) *EventResponse {
	if m == nil {
		return nil
	}
	resp := &EventResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		EventDate:     m.EventDate,
		OrganizerID:   m.OrganizerID,
		OrganizerType: m.OrganizerType,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if len(m.Students) > 0 {
		resp.Students = make([]*studentDTO.StudentLite, 0, len(m.Students))
		for i := range m.Students {
			resp.Students = append(resp.Students, studentDTO.NewStudentLite(&m.Students[i]))
		}
	}
	if len(m.Teachers) > 0 {
		resp.Teachers = make([]*teacherDTO.TeacherLite, 0, len(m.Teachers))
		for i := range m.Teachers {
			resp.Teachers = append(resp.Teachers, teacherDTO.NewTeacherLite(&m.Teachers[i]))
		}
	}
	return resp
}

func (r *CreateEventRequest) ToModel(eventDate time.Time) *model.EventModel {
	m := &model.EventModel{
		Title:       r.Title,
		Description: r.Description,
		EventDate:   eventDate,
	}
	m.SetOrganizer(r.Organizer())
	return m
}

// ApplyToModel переносит присланные поля; дата, организатор и участники
// обрабатываются в контроллере.
func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = r.Description
	}
}
