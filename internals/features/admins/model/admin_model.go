package model

import "time"

// AdminModel — таблица `admins`
type AdminModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string    `json:"last_name" gorm:"column:last_name;type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(160);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AdminModel) TableName() string {
	return "admins"
}
