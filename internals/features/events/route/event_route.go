package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/events/controller"
	authmw "shkola_backend/internals/middlewares/auth"
)

// EventRoutes: чтение публичное, запись только с токеном.
func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	r := api.Group("/events")
	r.Get("/:id", ctl.FindOne)
	r.Get("/", ctl.FindAll)
	r.Post("/", authmw.AuthMiddleware(), ctl.Create)
	r.Put("/:id", authmw.AuthMiddleware(), ctl.Update)
	r.Delete("/:id", authmw.AuthMiddleware(), ctl.Delete)
}
