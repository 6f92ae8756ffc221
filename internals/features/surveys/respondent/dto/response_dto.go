package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Request
========================================================= */

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	// Skor mentah untuk soal likert (1..4 atau 1..6 sesuai tipe soal).
	Score int `json:"score" validate:"omitempty,min=0,max=6"`
	// Nilai jawaban non-likert: string, angka, atau array untuk checkbox.
	Value any `json:"value"`
}

type SubmitDemographicRequest struct {
	FieldID string `json:"field_id" validate:"required,uuid4"`
	Value   any    `json:"value"`
}

type SubmitResponseRequest struct {
	RespondentName    *string `json:"respondent_name"`
	RespondentContact *string `json:"respondent_contact"`

	Answers      []SubmitAnswerRequest      `json:"answers" validate:"required,min=1,dive"`
	Demographics []SubmitDemographicRequest `json:"demographics" validate:"omitempty,dive"`
}

/* =========================================================
   Response
========================================================= */

type SubmitResponseResult struct {
	ResponseID    uuid.UUID `json:"response_id"`
	SurveyID      uuid.UUID `json:"survey_id"`
	PeriodeSurvei string    `json:"periode_survei"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type ResponseListItem struct {
	ResponseID    uuid.UUID `json:"response_id"`
	RespondentID  uuid.UUID `json:"respondent_id"`
	Respondent    *string   `json:"respondent_name,omitempty"`
	PeriodeSurvei string    `json:"periode_survei"`
	SubmittedAt   time.Time `json:"submitted_at"`
	AnswerCount   int       `json:"answer_count"`
}
