package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/surveys/survey/controller"
)

// 🌐 Rute publik: definisi survei aktif untuk form pengisian.
func SurveyPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSurveyController(db)
	api.Get("/surveys/active", ctrl.GetActive)
}

// 🔒 Rute admin: kelola survei (sudah di belakang JWT + cek role).
func SurveyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSurveyController(db)

	surveys := api.Group("/surveys")
	surveys.Post("/", ctrl.Create)
	surveys.Get("/", ctrl.GetAll)
	surveys.Get("/:id", ctrl.GetByID)
	surveys.Put("/:id", ctrl.Update)
	surveys.Delete("/:id", ctrl.Delete)
}
