package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "surveyku_backend/internals/features/users/auth/controller"
	"surveyku_backend/internals/middlewares"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.LoginRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), authCtrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), authCtrl.Me)
}
