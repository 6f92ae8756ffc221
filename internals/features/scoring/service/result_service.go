package service

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
	respondentModel "surveyku_backend/internals/features/surveys/respondent/model"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
)

var ErrSurveyNotFound = errors.New("survei tidak ditemukan")

// ResultService memuat snapshot survei + respons dari database, memetakannya
// SEKALI ke bentuk input mesin skoring, lalu menjalankan mesin. Tidak ada
// cache; skor selalu dihitung ulang dari snapshot terkini.
type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

// BuildResult menghitung hasil skoring satu survei. periodKey kosong berarti
// semua periode; variant kosong memakai default mesin.
func (s *ResultService) BuildResult(surveyID uuid.UUID, periodKey string, variant engine.IndexVariant) (*engine.SurveyResult, error) {
	input, responses, err := s.loadSnapshot(surveyID)
	if err != nil {
		return nil, err
	}

	result := engine.BuildSurveyResult(*input, responses, engine.Options{
		Variant:      variant,
		PeriodFilter: periodKey,
	})
	return &result, nil
}

// loadSnapshot adalah satu-satunya titik pemetaan baris database → input
// mesin. Nama kolom diselesaikan di sini sekali; mesin tidak pernah
// menebak-nebak bentuk field.
func (s *ResultService) loadSnapshot(surveyID uuid.UUID) (*engine.SurveyInput, []engine.ResponseInput, error) {
	var survey surveyModel.SurveyModel
	err := s.DB.
		Preload("SurveyIndicators", func(db *gorm.DB) *gorm.DB {
			return db.Order("indicator_order_index ASC")
		}).
		Preload("SurveyIndicators.IndicatorQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order_index ASC")
		}).
		Preload("SurveyDemographicFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("demographic_field_order_index ASC")
		}).
		First(&survey, "survey_id = ?", surveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSurveyNotFound
		}
		return nil, nil, err
	}

	input := mapSurveyInput(&survey)

	var rows []respondentModel.ResponseModel
	err = s.DB.
		Preload("ResponseAnswers").
		Preload("ResponseDemographics").
		Where("response_survey_id = ?", surveyID).
		Order("response_submitted_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	responses := make([]engine.ResponseInput, 0, len(rows))
	for i := range rows {
		responses = append(responses, mapResponseInput(&rows[i]))
	}
	return input, responses, nil
}

func mapSurveyInput(m *surveyModel.SurveyModel) *engine.SurveyInput {
	input := &engine.SurveyInput{
		ID:       m.SurveyID.String(),
		Title:    m.SurveyTitle,
		Type:     m.SurveyType,
		Category: m.SurveyCategory,
		Period:   m.Period(),
	}

	for _, ind := range m.SurveyIndicators {
		indicator := engine.IndicatorInput{
			ID:     ind.IndicatorID.String(),
			Title:  ind.IndicatorTitle,
			Weight: ind.IndicatorWeight,
		}
		for _, q := range ind.IndicatorQuestions {
			indicator.Questions = append(indicator.Questions, engine.QuestionInput{
				ID:       q.QuestionID.String(),
				Text:     q.QuestionText,
				Type:     q.QuestionType,
				Weight:   q.QuestionWeight,
				Required: q.QuestionRequired,
				Options:  q.QuestionOptions,
			})
		}
		input.Indicators = append(input.Indicators, indicator)
	}

	for _, f := range m.SurveyDemographicFields {
		input.DemographicFields = append(input.DemographicFields, engine.DemographicFieldInput{
			ID:      f.DemographicFieldID.String(),
			Label:   f.DemographicFieldLabel,
			Type:    f.DemographicFieldType,
			Options: f.DemographicFieldOptions,
		})
	}
	return input
}

func mapResponseInput(r *respondentModel.ResponseModel) engine.ResponseInput {
	input := engine.ResponseInput{
		ID:           r.ResponseID.String(),
		PeriodKey:    r.ResponsePeriodeSurvei,
		Scores:       map[string]float64{},
		Demographics: map[string]any{},
	}

	for _, a := range r.ResponseAnswers {
		if a.AnswerScore > 0 {
			input.Scores[a.AnswerQuestionID.String()] = float64(a.AnswerScore)
		}
	}

	for _, d := range r.ResponseDemographics {
		if len(d.DemographicResponseValue) == 0 {
			continue
		}
		var value any
		if err := sonic.Unmarshal(d.DemographicResponseValue, &value); err != nil {
			log.Printf("[WARN] Nilai demografi %s tidak bisa dibaca: %v", d.DemographicResponseID, err)
			continue
		}
		input.Demographics[d.DemographicResponseFieldID.String()] = value
	}
	return input
}
