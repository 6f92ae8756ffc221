package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
	respondentModel "surveyku_backend/internals/features/surveys/respondent/model"
	"surveyku_backend/internals/features/surveys/survey/dto"
	"surveyku_backend/internals/features/surveys/survey/model"
	helper "surveyku_backend/internals/helpers"
)

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

var validate = validator.New()

// ✅ Create membuat survei lengkap (indikator + soal + kolom demografi)
// dalam satu transaksi. Bobot indikator survei weighted harus total 100.
func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.SurveyType == engine.SurveyTypeWeighted {
		total := 0
		for _, ind := range req.SurveyIndicators {
			total += ind.IndicatorWeight
		}
		if total != 100 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Total bobot indikator survei weighted harus 100")
		}
	}

	survey := req.ToModel()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&survey).Error
	}); err != nil {
		log.Printf("[ERROR] Gagal membuat survei: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat survei")
	}

	return helper.JsonCreated(c, "Survei berhasil dibuat", survey)
}

// ✅ GetAll mengembalikan daftar survei dengan paginasi dan jumlah respons.
func (ctrl *SurveyController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	query := ctrl.DB.Model(&model.SurveyModel{})
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		query = query.Where("survey_is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung survei")
	}

	var surveys []model.SurveyModel
	if err := query.
		Order("survey_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&surveys).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar survei")
	}

	items := make([]dto.SurveySummaryResponse, 0, len(surveys))
	for i := range surveys {
		var count int64
		ctrl.DB.Model(&respondentModel.ResponseModel{}).
			Where("response_survey_id = ?", surveys[i].SurveyID).
			Count(&count)

		resolved := engine.ResolvePeriod(surveys[i].Period())
		items = append(items, dto.ToSummaryResponse(&surveys[i], resolved.DisplayLabel, count))
	}

	return helper.JsonList(c, "Daftar survei berhasil diambil", items, helper.BuildPagination(paging, total))
}

// ✅ GetByID mengembalikan detail survei beserta indikator, soal, dan kolom
// demografi terurut.
func (ctrl *SurveyController) GetByID(c *fiber.Ctx) error {
	survey, err := ctrl.findSurvey(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Survei tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail survei berhasil diambil", survey)
}

// ✅ GetActive mengembalikan definisi survei aktif untuk form publik.
func (ctrl *SurveyController) GetActive(c *fiber.Ctx) error {
	var survey model.SurveyModel
	err := ctrl.DB.
		Preload("SurveyIndicators", func(db *gorm.DB) *gorm.DB {
			return db.Order("indicator_order_index ASC")
		}).
		Preload("SurveyIndicators.IndicatorQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order_index ASC")
		}).
		Preload("SurveyDemographicFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("demographic_field_order_index ASC")
		}).
		Where("survey_is_active = ?", true).
		Order("survey_created_at DESC").
		First(&survey).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada survei aktif")
	}
	return helper.JsonOK(c, "Survei aktif berhasil diambil", survey)
}

// ✅ Update mengubah metadata survei. Tipe survei terkunci begitu sudah ada
// respons masuk, karena mengubah rumus skoring akan merusak hasil lama.
func (ctrl *SurveyController) Update(c *fiber.Ctx) error {
	survey, err := ctrl.findSurvey(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Survei tidak ditemukan")
	}

	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.SurveyType != nil && *req.SurveyType != survey.SurveyType {
		var count int64
		ctrl.DB.Model(&respondentModel.ResponseModel{}).
			Where("response_survey_id = ?", survey.SurveyID).
			Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict,
				"Tipe survei tidak bisa diubah karena sudah ada respons masuk")
		}
		survey.SurveyType = *req.SurveyType
	}

	if req.SurveyTitle != nil {
		survey.SurveyTitle = *req.SurveyTitle
	}
	if req.SurveyDescription != nil {
		survey.SurveyDescription = req.SurveyDescription
	}
	if req.SurveyIsActive != nil {
		survey.SurveyIsActive = *req.SurveyIsActive
	}
	if req.SurveyCategory != nil {
		survey.SurveyCategory = *req.SurveyCategory
	}
	if req.SurveyPeriodType != nil {
		survey.SurveyPeriodType = *req.SurveyPeriodType
	}
	if req.SurveyPeriodYear != nil {
		survey.SurveyPeriodYear = *req.SurveyPeriodYear
	}
	if req.SurveyPeriodValue != nil {
		survey.SurveyPeriodValue = *req.SurveyPeriodValue
	}

	if err := ctrl.DB.Save(survey).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui survei %s: %v", survey.SurveyID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui survei")
	}
	return helper.JsonUpdated(c, "Survei berhasil diperbarui", survey)
}

// ✅ Delete melakukan soft delete; hasil skoring lama tetap bisa dihitung
// ulang dari respons yang tersimpan.
func (ctrl *SurveyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	result := ctrl.DB.Delete(&model.SurveyModel{}, "survey_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus survei")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Survei tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Survei berhasil dihapus", fiber.Map{"survey_id": id})
}

func (ctrl *SurveyController) findSurvey(idParam string) (*model.SurveyModel, error) {
	id, err := uuid.Parse(idParam)
	if err != nil {
		return nil, err
	}

	var survey model.SurveyModel
	err = ctrl.DB.
		Preload("SurveyIndicators", func(db *gorm.DB) *gorm.DB {
			return db.Order("indicator_order_index ASC")
		}).
		Preload("SurveyIndicators.IndicatorQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order_index ASC")
		}).
		Preload("SurveyDemographicFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("demographic_field_order_index ASC")
		}).
		First(&survey, "survey_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}
