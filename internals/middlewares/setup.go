package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"shkola_backend/internals/middlewares/logger"
)

// SetupMiddlewares вешает базовый набор на всё приложение
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
