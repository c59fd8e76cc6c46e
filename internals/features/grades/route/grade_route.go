package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/grades/controller"
	authmw "shkola_backend/internals/middlewares/auth"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGradeController(db)

	r := api.Group("/grades", authmw.AuthMiddleware())
	r.Post("/", ctl.Create)
	r.Get("/:id", ctl.FindOne)
	r.Get("/", ctl.FindAll)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
