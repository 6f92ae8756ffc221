package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk seluruh app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
