package dto

import (
	"time"

	"gorm.io/datatypes"

	"shkola_backend/internals/features/attendance/model"
	scheduleDTO "shkola_backend/internals/features/schedules/dto"
	studentDTO "shkola_backend/internals/features/students/dto"
	"shkola_backend/internals/helpers/dbtime"
)

/* ========== REQUEST DTOs ========== */

type CreateAttendanceRequest struct {
	StudentID  uint    `json:"student_id"  validate:"required"`
	ScheduleID uint    `json:"schedule_id" validate:"required"`
	Date       string  `json:"date"        validate:"required"`
	Status     string  `json:"status"      validate:"required"`
	Remarks    *string `json:"remarks"`
}

type UpdateAttendanceRequest struct {
	StudentID  *uint   `json:"student_id"`
	ScheduleID *uint   `json:"schedule_id"`
	Date       *string `json:"date"`
	Status     *string `json:"status"`
	Remarks    *string `json:"remarks"`
}

/* ========== RESPONSE DTO ========== */

type AttendanceResponse struct {
	ID         uint                      `json:"id"`
	StudentID  uint                      `json:"student_id"`
	ScheduleID uint                      `json:"schedule_id"`
	Date       string                    `json:"date"`
	Status     string                    `json:"status"`
	Remarks    *string                   `json:"remarks,omitempty"`
	Student    *studentDTO.StudentLite   `json:"student,omitempty"`
	Schedule   *scheduleDTO.ScheduleLite `json:"schedule,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

func NewAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		ID:         m.ID,
		StudentID:  m.StudentID,
		ScheduleID: m.ScheduleID,
		Date:       dbtime.FormatDate(m.Date),
		Status:     m.Status,
		Remarks:    m.Remarks,
		Student:    studentDTO.NewStudentLite(m.Student),
		Schedule:   scheduleDTO.NewScheduleLite(m.Schedule),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *CreateAttendanceRequest) ToModel(date datatypes.Date) *model.AttendanceModel {
	return &model.AttendanceModel{
		StudentID:  r.StudentID,
		ScheduleID: r.ScheduleID,
		Date:       date,
		Status:     r.Status,
		Remarks:    r.Remarks,
	}
}

// ApplyToModel переносит присланные поля; дата обрабатывается в контроллере.
func (r *UpdateAttendanceRequest) ApplyToModel(m *model.AttendanceModel) {
	if r.StudentID != nil {
		m.StudentID = *r.StudentID
	}
	if r.ScheduleID != nil {
		m.ScheduleID = *r.ScheduleID
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Remarks != nil {
		m.Remarks = r.Remarks
	}
}
