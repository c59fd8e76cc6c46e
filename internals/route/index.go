package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "shkola_backend/internals/features/admins/route"
	attendanceRoute "shkola_backend/internals/features/attendance/route"
	classRoute "shkola_backend/internals/features/classes/route"
	eventRoute "shkola_backend/internals/features/events/route"
	gradeRoute "shkola_backend/internals/features/grades/route"
	scheduleRoute "shkola_backend/internals/features/schedules/route"
	studentRoute "shkola_backend/internals/features/students/route"
	teacherRoute "shkola_backend/internals/features/teachers/route"
	helper "shkola_backend/internals/helpers"
)

// SetupRoutes монтирует все фичи под /api и ставит 404-заглушку.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	adminRoute.AdminRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	scheduleRoute.ScheduleRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)

	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Маршрут не найден")
	})
}
