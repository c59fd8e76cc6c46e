package model

import (
	"time"

	"gorm.io/datatypes"

	scheduleModel "shkola_backend/internals/features/schedules/model"
	studentModel "shkola_backend/internals/features/students/model"
)

// AttendanceModel — таблица `attendance`. Пара (student_id, schedule_id)
// на конкретную дату уникальна.
type AttendanceModel struct {
	ID         uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	StudentID  uint           `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:idx_attendance_mark"`
	ScheduleID uint           `json:"schedule_id" gorm:"column:schedule_id;not null;uniqueIndex:idx_attendance_mark"`
	Date       datatypes.Date `json:"date" gorm:"column:date;not null;uniqueIndex:idx_attendance_mark"`
	Status     string         `json:"status" gorm:"column:status;type:varchar(10);not null"`
	Remarks    *string        `json:"remarks,omitempty" gorm:"column:remarks;type:text"`
	CreatedAt  time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Student  *studentModel.StudentModel   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Schedule *scheduleModel.ScheduleModel `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
