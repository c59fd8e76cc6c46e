package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/attendance/controller"
	authmw "shkola_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	r := api.Group("/attendance", authmw.AuthMiddleware())
	r.Post("/", ctl.Create)
	r.Get("/:id", ctl.FindOne)
	r.Get("/", ctl.FindAll)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
