package model

import (
	"time"

	"gorm.io/datatypes"
)

// StudentModel — таблица `students`. Класс привязан по class_id,
// сам объект класса подтягивается на уровне контроллера.
type StudentModel struct {
	ID            uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FirstName     string         `json:"first_name" gorm:"column:first_name;type:varchar(100);not null"`
	LastName      string         `json:"last_name" gorm:"column:last_name;type:varchar(100);not null"`
	Email         string         `json:"email" gorm:"column:email;type:varchar(160);uniqueIndex;not null"`
	Password      string         `json:"-" gorm:"column:password;type:varchar(100);not null"`
	BirthDate     datatypes.Date `json:"birth_date" gorm:"column:birth_date;not null"`
	ParentContact *string        `json:"parent_contact,omitempty" gorm:"column:parent_contact;type:varchar(160)"`
	ClassID       uint           `json:"class_id" gorm:"column:class_id;not null;index"` // FK -> classes(id)
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}
