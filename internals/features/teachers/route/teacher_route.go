package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/teachers/controller"
	"shkola_backend/internals/middlewares"
	authmw "shkola_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db)

	r := api.Group("/teachers")
	r.Post("/registration", middlewares.RegisterRateLimiter(), ctl.Registration)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Get("/auth", authmw.AuthMiddleware(), ctl.Auth)
	r.Get("/:id", authmw.AuthMiddleware(), ctl.FindOne)
	r.Get("/", authmw.AuthMiddleware(), ctl.FindAll)
	r.Put("/:id", authmw.AuthMiddleware(), ctl.Update)
	r.Delete("/:id", authmw.AuthMiddleware(), ctl.Delete)
}
