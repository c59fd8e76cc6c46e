package database

import (
	"gorm.io/gorm"

	adminModel "shkola_backend/internals/features/admins/model"
	attendanceModel "shkola_backend/internals/features/attendance/model"
	classModel "shkola_backend/internals/features/classes/model"
	eventModel "shkola_backend/internals/features/events/model"
	gradeModel "shkola_backend/internals/features/grades/model"
	scheduleModel "shkola_backend/internals/features/schedules/model"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
)

// AutoMigrate создаёт восемь таблиц сущностей и две join-таблицы событий.
// Композитные уникальные индексы (расписание, посещаемость) объявлены в моделях.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel.AdminModel{},
		&teacherModel.TeacherModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&scheduleModel.ScheduleModel{},
		&gradeModel.GradeModel{},
		&eventModel.EventModel{},
		&attendanceModel.AttendanceModel{},
	)
}
