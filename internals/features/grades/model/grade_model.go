package model

import (
	"time"

	"gorm.io/datatypes"

	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
)

// GradeModel — таблица `grades`.
type GradeModel struct {
	ID         uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	StudentID  uint           `json:"student_id" gorm:"column:student_id;not null;index"`
	TeacherID  uint           `json:"teacher_id" gorm:"column:teacher_id;not null;index"`
	GradeValue float64        `json:"grade_value" gorm:"column:grade_value;not null"`
	Date       datatypes.Date `json:"date" gorm:"column:date;not null;index"`
	CreatedAt  time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Student *studentModel.StudentModel `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Teacher *teacherModel.TeacherModel `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

func (GradeModel) TableName() string {
	return "grades"
}
