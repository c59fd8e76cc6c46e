package model

import "time"

// TeacherModel — таблица `teachers`
type TeacherModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string    `json:"last_name" gorm:"column:last_name;type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(160);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;type:varchar(100);not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"column:phone;type:varchar(32)"`
	Room      *string   `json:"room,omitempty" gorm:"column:room;type:varchar(32)"`
	Subject   string    `json:"subject" gorm:"column:subject;type:varchar(120);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
