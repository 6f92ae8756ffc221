package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
	"surveyku_backend/internals/features/surveys/respondent/dto"
	"surveyku_backend/internals/features/surveys/respondent/model"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
	helper "surveyku_backend/internals/helpers"
)

type ResponseController struct {
	DB *gorm.DB
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{DB: db}
}

var validate = validator.New()

// ✅ Submit menerima satu pengisian survei publik: validasi soal & kolom
// demografi wajib, stempel periode kanonik dari survei, lalu simpan
// respondent + response + answers + demographics dalam satu transaksi.
func (ctrl *ResponseController) Submit(c *fiber.Ctx) error {
	surveyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	var req dto.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.
		Preload("SurveyIndicators.IndicatorQuestions").
		Preload("SurveyDemographicFields").
		First(&survey, "survey_id = ?", surveyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Survei tidak ditemukan")
	}
	if !survey.SurveyIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Survei sudah ditutup")
	}

	if msg := validateSubmission(&survey, &req); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	now := time.Now()
	respondent := model.RespondentModel{
		RespondentName:    req.RespondentName,
		RespondentContact: req.RespondentContact,
	}
	response := model.ResponseModel{
		ResponseSurveyID:      surveyID,
		ResponsePeriodeSurvei: survey.PeriodKey(),
		ResponseSubmittedAt:   now,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&respondent).Error; err != nil {
			return err
		}
		response.ResponseRespondentID = respondent.RespondentID
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		for _, a := range req.Answers {
			qid, _ := uuid.Parse(a.QuestionID)
			answer := model.AnswerModel{
				AnswerResponseID: response.ResponseID,
				AnswerQuestionID: qid,
				AnswerScore:      a.Score,
			}
			if a.Value != nil {
				raw, err := sonic.Marshal(a.Value)
				if err != nil {
					return err
				}
				answer.AnswerValue = datatypes.JSON(raw)
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}

		for _, d := range req.Demographics {
			fid, _ := uuid.Parse(d.FieldID)
			raw, err := sonic.Marshal(d.Value)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.DemographicResponseModel{
				DemographicResponseResponseID: response.ResponseID,
				DemographicResponseFieldID:    fid,
				DemographicResponseValue:      datatypes.JSON(raw),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan respons survei %s: %v", surveyID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan respons")
	}

	return helper.JsonCreated(c, "Terima kasih, jawaban Anda sudah terekam", dto.SubmitResponseResult{
		ResponseID:    response.ResponseID,
		SurveyID:      surveyID,
		PeriodeSurvei: response.ResponsePeriodeSurvei,
		SubmittedAt:   now,
	})
}

// validateSubmission memeriksa jawaban hanya merujuk soal milik survei ini,
// soal wajib terjawab, skor likert di rentang tipe soalnya, dan kolom
// demografi wajib tidak kosong.
func validateSubmission(survey *surveyModel.SurveyModel, req *dto.SubmitResponseRequest) string {
	known := map[string]bool{}
	for _, ind := range survey.SurveyIndicators {
		for _, q := range ind.IndicatorQuestions {
			known[q.QuestionID.String()] = true
		}
	}

	answered := map[string]dto.SubmitAnswerRequest{}
	for _, a := range req.Answers {
		id := strings.ToLower(a.QuestionID)
		if !known[id] {
			return fmt.Sprintf("Soal tidak dikenali pada survei ini: %s", a.QuestionID)
		}
		answered[id] = a
	}

	for _, ind := range survey.SurveyIndicators {
		for _, q := range ind.IndicatorQuestions {
			a, ok := answered[q.QuestionID.String()]
			if !ok {
				if q.QuestionRequired {
					return fmt.Sprintf("Soal wajib belum dijawab: %s", q.QuestionText)
				}
				continue
			}
			if engine.IsLikert(q.QuestionType) {
				// skor 0 = tidak menjawab, sah untuk soal opsional
				if a.Score == 0 {
					if q.QuestionRequired {
						return fmt.Sprintf("Soal wajib belum dijawab: %s", q.QuestionText)
					}
					continue
				}
				max := engine.ScaleMax(q.QuestionType)
				if a.Score < 1 || a.Score > max {
					return fmt.Sprintf("Skor soal %q harus 1-%d", q.QuestionText, max)
				}
			} else if q.QuestionRequired && isEmptyValue(a.Value) {
				return fmt.Sprintf("Jawaban soal wajib kosong: %s", q.QuestionText)
			}
		}
	}

	filled := map[string]any{}
	for _, d := range req.Demographics {
		filled[strings.ToLower(d.FieldID)] = d.Value
	}
	for _, f := range survey.SurveyDemographicFields {
		if !f.DemographicFieldRequired {
			continue
		}
		v, ok := filled[f.DemographicFieldID.String()]
		if !ok || isEmptyValue(v) {
			return fmt.Sprintf("Kolom demografi wajib belum diisi: %s", f.DemographicFieldLabel)
		}
	}
	return ""
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

// ✅ GetBySurvey mengembalikan daftar respons satu survei (admin) dengan
// paginasi dan filter periode opsional (?period=Q3-2025).
func (ctrl *ResponseController) GetBySurvey(c *fiber.Ctx) error {
	surveyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.ResponseModel{}).Where("response_survey_id = ?", surveyID)
	if period := strings.ToUpper(strings.TrimSpace(c.Query("period"))); period != "" {
		if _, err := engine.ParsePeriodKey(period); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kunci periode tidak valid")
		}
		query = query.Where("response_periode_survei = ?", period)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung respons")
	}

	var responses []model.ResponseModel
	if err := query.
		Preload("ResponseAnswers").
		Order("response_submitted_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&responses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil respons")
	}

	items := make([]dto.ResponseListItem, 0, len(responses))
	for _, r := range responses {
		var respondent model.RespondentModel
		ctrl.DB.First(&respondent, "respondent_id = ?", r.ResponseRespondentID)
		items = append(items, dto.ResponseListItem{
			ResponseID:    r.ResponseID,
			RespondentID:  r.ResponseRespondentID,
			Respondent:    respondent.RespondentName,
			PeriodeSurvei: r.ResponsePeriodeSurvei,
			SubmittedAt:   r.ResponseSubmittedAt,
			AnswerCount:   len(r.ResponseAnswers),
		})
	}

	return helper.JsonList(c, "Daftar respons berhasil diambil", items, helper.BuildPagination(paging, total))
}

// ✅ GetDetail mengembalikan satu respons lengkap dengan jawaban & demografi.
func (ctrl *ResponseController) GetDetail(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID respons tidak valid")
	}

	var response model.ResponseModel
	if err := ctrl.DB.
		Preload("ResponseAnswers").
		Preload("ResponseDemographics").
		First(&response, "response_id = ?", responseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Respons tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail respons berhasil diambil", response)
}

// ✅ CountBySurvey mengembalikan jumlah respons per periode untuk kartu
// ringkasan dashboard.
func (ctrl *ResponseController) CountBySurvey(c *fiber.Ctx) error {
	surveyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	type periodCount struct {
		PeriodeSurvei string `json:"periode_survei"`
		Total         int64  `json:"total"`
	}
	var counts []periodCount
	if err := ctrl.DB.Model(&model.ResponseModel{}).
		Select("response_periode_survei AS periode_survei, COUNT(*) AS total").
		Where("response_survey_id = ?", surveyID).
		Group("response_periode_survei").
		Order("response_periode_survei").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung respons")
	}

	var grandTotal int64
	for _, pc := range counts {
		grandTotal += pc.Total
	}
	return helper.JsonOK(c, "Jumlah respons berhasil diambil", fiber.Map{
		"survey_id":  surveyID,
		"total":      grandTotal,
		"per_period": counts,
	})
}
