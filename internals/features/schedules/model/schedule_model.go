package model

import (
	"time"

	classModel "shkola_backend/internals/features/classes/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
)

// ScheduleModel — таблица `schedules`. Слот (class_id, day_of_week,
// lesson_number) уникален.
type ScheduleModel struct {
	ID           uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ClassID      uint      `json:"class_id" gorm:"column:class_id;not null;uniqueIndex:idx_schedules_slot"`
	TeacherID    uint      `json:"teacher_id" gorm:"column:teacher_id;not null;index"`
	DayOfWeek    int       `json:"day_of_week" gorm:"column:day_of_week;not null;uniqueIndex:idx_schedules_slot"`
	LessonNumber int       `json:"lesson_number" gorm:"column:lesson_number;not null;uniqueIndex:idx_schedules_slot"`
	Classroom    string    `json:"classroom" gorm:"column:classroom;type:varchar(50);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Class   *classModel.ClassModel     `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	Teacher *teacherModel.TeacherModel `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
