package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/controller"
)

// 🔒 Rute admin: hasil skoring dan rekap (di belakang JWT + cek role).
func ScoringAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResultController(db)

	api.Get("/surveys/:id/result", ctrl.GetResult)
	api.Get("/surveys/:id/result/indicators/:indicatorId", ctrl.GetIndicatorDetail)
	api.Get("/surveys/:id/demographics", ctrl.GetDemographics)
	api.Get("/periods/label", ctrl.GetPeriodLabel)
}
