package model

import (
	"time"

	"shkola_backend/internals/constants"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
)

// Organizer — типизированная ссылка на организатора события:
// либо администратор, либо учитель.
type Organizer struct {
	Type string
	ID   uint
}

func AdminOrganizer(id uint) Organizer {
	return Organizer{Type: constants.OrganizerAdmin, ID: id}
}

func TeacherOrganizer(id uint) Organizer {
	return Organizer{Type: constants.OrganizerTeacher, ID: id}
}

func (o Organizer) IsValid() bool {
	return o.ID > 0 && constants.IsValidOrganizerType(o.Type)
}

// EventModel — таблица `events` + m2m связи event_students / event_teachers.
type EventModel struct {
	ID            uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"column:title;type:varchar(200);not null"`
	Description   *string   `json:"description,omitempty" gorm:"column:description;type:text"`
	EventDate     time.Time `json:"event_date" gorm:"column:event_date;not null;index"`
	OrganizerID   uint      `json:"organizer_id" gorm:"column:organizer_id;not null;index"`
	OrganizerType string    `json:"organizer_type" gorm:"column:organizer_type;type:varchar(20);not null;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Students []studentModel.StudentModel `json:"students,omitempty" gorm:"many2many:event_students;joinForeignKey:event_id;joinReferences:student_id"`
	Teachers []teacherModel.TeacherModel `json:"teachers,omitempty" gorm:"many2many:event_teachers;joinForeignKey:event_id;joinReferences:teacher_id"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) Organizer() Organizer {
	return Organizer{Type: m.OrganizerType, ID: m.OrganizerID}
}

func (m *EventModel) SetOrganizer(o Organizer) {
	m.OrganizerType = o.Type
	m.OrganizerID = o.ID
}
