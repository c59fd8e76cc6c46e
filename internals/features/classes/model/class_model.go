package model

import (
	"time"

	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
)

// ClassModel — таблица `classes`. Классный руководитель и студенты
// подтягиваются через Preload.
type ClassModel struct {
	ID             uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"column:name;type:varchar(100);not null"`
	ClassTeacherID uint      `json:"class_teacher_id" gorm:"column:class_teacher_id;not null;index"` // FK -> teachers(id)
	AcademicYear   string    `json:"academic_year" gorm:"column:academic_year;type:varchar(20);not null;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	ClassTeacher *teacherModel.TeacherModel `json:"class_teacher,omitempty" gorm:"foreignKey:ClassTeacherID"`
	Students     []studentModel.StudentModel `json:"students,omitempty" gorm:"foreignKey:ClassID"`
}

func (ClassModel) TableName() string {
	return "classes"
}
