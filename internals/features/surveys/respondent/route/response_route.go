package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/surveys/respondent/controller"
	"surveyku_backend/internals/middlewares"
)

// 🌐 Rute publik: submit pengisian survei (dibatasi rate limiter khusus).
func ResponsePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResponseController(db)
	api.Post("/surveys/:id/responses", middlewares.SubmitRateLimiter(), ctrl.Submit)
}

// 🔒 Rute admin: baca respons per survei.
func ResponseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResponseController(db)

	api.Get("/surveys/:id/responses", ctrl.GetBySurvey)
	api.Get("/surveys/:id/responses/count", ctrl.CountBySurvey)
	api.Get("/surveys/:id/responses/:responseId", ctrl.GetDetail)
}
