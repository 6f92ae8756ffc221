package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	authRoute "surveyku_backend/internals/features/users/auth/route"

	scoringRoute "surveyku_backend/internals/features/scoring/route"
	respondentRoute "surveyku_backend/internals/features/surveys/respondent/route"
	surveyRoute "surveyku_backend/internals/features/surveys/survey/route"

	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh rute aplikasi:
//   - /api/auth    → registrasi, login, logout
//   - /api/public  → definisi survei aktif + submit respons (tanpa login)
//   - /api/u       → rute pengguna login
//   - /api/a       → rute admin/owner (kelola survei, respons, hasil skoring)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔑 Auth
	authRoute.AuthRoutes(app, db)

	// 🌐 Publik: form pengisian survei
	public := app.Group("/api/public")
	surveyRoute.SurveyPublicRoutes(public, db)
	respondentRoute.ResponsePublicRoutes(public, db)

	// 👤 Pengguna login (riwayat pengisian, profil)
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	surveyRoute.SurveyPublicRoutes(user, db)

	// 🔒 Admin & owner
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola survei"), constants.AdminAndAbove),
	)
	surveyRoute.SurveyAdminRoutes(admin, db)
	respondentRoute.ResponseAdminRoutes(admin, db)
	scoringRoute.ScoringAdminRoutes(admin, db)
}
