package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"surveyku_backend/internals/features/surveys/survey/model"
)

/* =========================================================
   Request
========================================================= */

type CreateQuestionRequest struct {
	QuestionText     string   `json:"question_text" validate:"required,min=3"`
	QuestionType     string   `json:"question_type" validate:"required,oneof=likert-4 likert-6 text dropdown radio checkbox date number"`
	QuestionRequired bool     `json:"question_required"`
	QuestionWeight   int      `json:"question_weight" validate:"omitempty,min=1,max=100"`
	QuestionOptions  []string `json:"question_options" validate:"omitempty,dive,required"`
}

type CreateIndicatorRequest struct {
	IndicatorTitle       string                  `json:"indicator_title" validate:"required,min=3"`
	IndicatorDescription *string                 `json:"indicator_description"`
	IndicatorWeight      int                     `json:"indicator_weight" validate:"omitempty,min=0,max=100"`
	IndicatorQuestions   []CreateQuestionRequest `json:"indicator_questions" validate:"required,min=1,dive"`
}

type CreateDemographicFieldRequest struct {
	DemographicFieldLabel    string   `json:"demographic_field_label" validate:"required,min=2"`
	DemographicFieldType     string   `json:"demographic_field_type" validate:"required,oneof=text dropdown radio checkbox date number"`
	DemographicFieldRequired bool     `json:"demographic_field_required"`
	DemographicFieldOptions  []string `json:"demographic_field_options" validate:"omitempty,dive,required"`
}

type CreateSurveyRequest struct {
	SurveyTitle       string  `json:"survey_title" validate:"required,min=3"`
	SurveyDescription *string `json:"survey_description"`
	SurveyType        string  `json:"survey_type" validate:"required,oneof=weighted unweighted"`
	SurveyCategory    string  `json:"survey_category" validate:"required,oneof=calculate non_calculate"`

	SurveyPeriodType  string `json:"survey_period_type" validate:"required,oneof=quarterly semester annual"`
	SurveyPeriodYear  int    `json:"survey_period_year" validate:"required,min=2000,max=2100"`
	SurveyPeriodValue string `json:"survey_period_value" validate:"omitempty,max=10"`

	SurveyIndicators        []CreateIndicatorRequest        `json:"survey_indicators" validate:"required,min=1,dive"`
	SurveyDemographicFields []CreateDemographicFieldRequest `json:"survey_demographic_fields" validate:"omitempty,dive"`
}

// UpdateSurveyRequest: hanya metadata tingkat survei. Perubahan struktur
// indikator/soal dilakukan lewat create versi baru, bukan patch sebagian.
type UpdateSurveyRequest struct {
	SurveyTitle       *string `json:"survey_title" validate:"omitempty,min=3"`
	SurveyDescription *string `json:"survey_description"`
	SurveyIsActive    *bool   `json:"survey_is_active"`
	SurveyType        *string `json:"survey_type" validate:"omitempty,oneof=weighted unweighted"`
	SurveyCategory    *string `json:"survey_category" validate:"omitempty,oneof=calculate non_calculate"`

	SurveyPeriodType  *string `json:"survey_period_type" validate:"omitempty,oneof=quarterly semester annual"`
	SurveyPeriodYear  *int    `json:"survey_period_year" validate:"omitempty,min=2000,max=2100"`
	SurveyPeriodValue *string `json:"survey_period_value" validate:"omitempty,max=10"`
}

/* =========================================================
   Mapping ke model
========================================================= */

func (r *CreateSurveyRequest) ToModel() model.SurveyModel {
	survey := model.SurveyModel{
		SurveyTitle:       r.SurveyTitle,
		SurveyDescription: r.SurveyDescription,
		SurveyIsActive:    true,
		SurveyType:        r.SurveyType,
		SurveyCategory:    r.SurveyCategory,
		SurveyPeriodType:  r.SurveyPeriodType,
		SurveyPeriodYear:  r.SurveyPeriodYear,
		SurveyPeriodValue: r.SurveyPeriodValue,
	}

	for i, ind := range r.SurveyIndicators {
		indicator := model.IndicatorModel{
			IndicatorTitle:       ind.IndicatorTitle,
			IndicatorDescription: ind.IndicatorDescription,
			IndicatorWeight:      ind.IndicatorWeight,
			IndicatorOrderIndex:  i + 1,
		}
		for j, q := range ind.IndicatorQuestions {
			weight := q.QuestionWeight
			if weight == 0 {
				weight = 100
			}
			indicator.IndicatorQuestions = append(indicator.IndicatorQuestions, model.QuestionModel{
				QuestionText:       q.QuestionText,
				QuestionType:       q.QuestionType,
				QuestionRequired:   q.QuestionRequired,
				QuestionWeight:     weight,
				QuestionOptions:    pq.StringArray(q.QuestionOptions),
				QuestionOrderIndex: j + 1,
			})
		}
		survey.SurveyIndicators = append(survey.SurveyIndicators, indicator)
	}

	for i, f := range r.SurveyDemographicFields {
		survey.SurveyDemographicFields = append(survey.SurveyDemographicFields, model.DemographicFieldModel{
			DemographicFieldLabel:      f.DemographicFieldLabel,
			DemographicFieldType:       f.DemographicFieldType,
			DemographicFieldRequired:   f.DemographicFieldRequired,
			DemographicFieldOptions:    pq.StringArray(f.DemographicFieldOptions),
			DemographicFieldOrderIndex: i + 1,
		})
	}

	return survey
}

/* =========================================================
   Response
========================================================= */

type SurveySummaryResponse struct {
	SurveyID          uuid.UUID `json:"survey_id"`
	SurveyTitle       string    `json:"survey_title"`
	SurveyDescription *string   `json:"survey_description,omitempty"`
	SurveyIsActive    bool      `json:"survey_is_active"`
	SurveyType        string    `json:"survey_type"`
	SurveyCategory    string    `json:"survey_category"`
	SurveyPeriodKey   string    `json:"survey_period_key"`
	SurveyPeriodLabel string    `json:"survey_period_label"`
	ResponseCount     int64     `json:"response_count"`
}

func ToSummaryResponse(m *model.SurveyModel, periodLabel string, responseCount int64) SurveySummaryResponse {
	return SurveySummaryResponse{
		SurveyID:          m.SurveyID,
		SurveyTitle:       m.SurveyTitle,
		SurveyDescription: m.SurveyDescription,
		SurveyIsActive:    m.SurveyIsActive,
		SurveyType:        m.SurveyType,
		SurveyCategory:    m.SurveyCategory,
		SurveyPeriodKey:   m.PeriodKey(),
		SurveyPeriodLabel: periodLabel,
		ResponseCount:     responseCount,
	}
}
