package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shkola_backend/internals/features/admins/controller"
	"shkola_backend/internals/middlewares"
	authmw "shkola_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdminController(db)

	r := api.Group("/admins")
	r.Post("/registration", middlewares.RegisterRateLimiter(), ctl.Registration)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Get("/auth", authmw.AuthMiddleware(), ctl.Auth)
	r.Get("/:id", authmw.AuthMiddleware(), ctl.FindOne)
	r.Get("/", authmw.AuthMiddleware(), ctl.FindAll)
	r.Put("/:id", authmw.AuthMiddleware(), ctl.Update)
	r.Delete("/:id", authmw.AuthMiddleware(), ctl.Delete)
}
