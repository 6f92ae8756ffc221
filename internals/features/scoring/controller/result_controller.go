package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
	"surveyku_backend/internals/features/scoring/service"
	helper "surveyku_backend/internals/helpers"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{Service: service.NewResultService(db)}
}

// parseResultQuery membaca ?period= dan ?variant= yang dipakai semua endpoint
// hasil. Varian tidak dikenal ditolak supaya laporan tidak diam-diam pindah
// rumus.
func parseResultQuery(c *fiber.Ctx) (periodKey string, variant engine.IndexVariant, errMsg string) {
	periodKey = strings.ToUpper(strings.TrimSpace(c.Query("period")))
	if periodKey != "" {
		if _, err := engine.ParsePeriodKey(periodKey); err != nil {
			return "", "", "Kunci periode tidak valid"
		}
	}

	switch v := strings.ToLower(strings.TrimSpace(c.Query("variant"))); v {
	case "":
		variant = engine.VariantIKM
	case string(engine.VariantIKM):
		variant = engine.VariantIKM
	case string(engine.VariantScale):
		variant = engine.VariantScale
	default:
		return "", "", "Varian indeks tidak dikenal (pakai ikm atau scale)"
	}
	return periodKey, variant, ""
}

// buildResult menjalankan parsing query + servis skoring. Jangan menulis
// respons di sini: status dan pesan error dikembalikan supaya setiap handler
// menulisnya sendiri lewat helper.JsonError (result nil berarti gagal).
func (ctrl *ResultController) buildResult(c *fiber.Ctx) (*engine.SurveyResult, int, string) {
	surveyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.StatusBadRequest, "ID survei tidak valid"
	}

	periodKey, variant, errMsg := parseResultQuery(c)
	if errMsg != "" {
		return nil, fiber.StatusBadRequest, errMsg
	}

	result, err := ctrl.Service.BuildResult(surveyID, periodKey, variant)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			return nil, fiber.StatusNotFound, "Survei tidak ditemukan"
		}
		log.Printf("[ERROR] Gagal menghitung hasil survei %s: %v", surveyID, err)
		return nil, fiber.StatusInternalServerError, "Gagal menghitung hasil survei"
	}
	return result, fiber.StatusOK, ""
}

// ✅ GetResult mengembalikan hasil skoring lengkap satu survei.
// GET /api/a/surveys/:id/result?period=Q3-2025&variant=ikm
func (ctrl *ResultController) GetResult(c *fiber.Ctx) error {
	result, status, errMsg := ctrl.buildResult(c)
	if result == nil {
		return helper.JsonError(c, status, errMsg)
	}
	return helper.JsonOK(c, "Hasil survei berhasil dihitung", result)
}

// ✅ GetIndicatorDetail mengembalikan skor satu indikator beserta detail
// per soal (rata-rata, median, modus, distribusi).
func (ctrl *ResultController) GetIndicatorDetail(c *fiber.Ctx) error {
	result, status, errMsg := ctrl.buildResult(c)
	if result == nil {
		return helper.JsonError(c, status, errMsg)
	}

	indicatorID := strings.ToLower(strings.TrimSpace(c.Params("indicatorId")))
	for _, ind := range result.IndicatorScores {
		if ind.IndicatorID == indicatorID {
			return helper.JsonOK(c, "Detail indikator berhasil dihitung", ind)
		}
	}
	return helper.JsonError(c, fiber.StatusNotFound, "Indikator tidak ditemukan pada survei ini")
}

// ✅ GetDemographics mengembalikan rekap demografi responden saja.
func (ctrl *ResultController) GetDemographics(c *fiber.Ctx) error {
	result, status, errMsg := ctrl.buildResult(c)
	if result == nil {
		return helper.JsonError(c, status, errMsg)
	}
	return helper.JsonOK(c, "Rekap demografi berhasil dihitung", fiber.Map{
		"survey_id":             result.SurveyID,
		"total_responses":       result.TotalResponses,
		"period":                result.Period,
		"demographic_breakdown": result.DemographicBreakdown,
	})
}

// ✅ GetPeriodLabel mengembalikan label periode untuk judul laporan di UI.
// GET /api/a/periods/label?key=Q3-2025
func (ctrl *ResultController) GetPeriodLabel(c *fiber.Ctx) error {
	key := strings.ToUpper(strings.TrimSpace(c.Query("key")))
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter key wajib diisi")
	}

	period, err := engine.ParsePeriodKey(key)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kunci periode tidak valid")
	}
	return helper.JsonOK(c, "Label periode berhasil diambil", engine.ResolvePeriod(period))
}
