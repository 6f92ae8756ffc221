package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResponseModel struct {
	ResponseID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:response_id" json:"response_id"`
	ResponseSurveyID     uuid.UUID `gorm:"type:uuid;not null;index;column:response_survey_id" json:"response_survey_id"`
	ResponseRespondentID uuid.UUID `gorm:"type:uuid;not null;index;column:response_respondent_id" json:"response_respondent_id"`

	// Kunci periode kanonik saat submit: "Q3-2025", "S1-2025", "TAHUN-2025".
	// Distempel dari periode survei, bukan dari input pengisi.
	ResponsePeriodeSurvei string `gorm:"type:varchar(15);not null;index;column:response_periode_survei" json:"response_periode_survei"`

	ResponseSubmittedAt time.Time `gorm:"type:timestamptz;not null;column:response_submitted_at" json:"response_submitted_at"`

	ResponseAnswers      []AnswerModel              `gorm:"foreignKey:AnswerResponseID;references:ResponseID" json:"response_answers,omitempty"`
	ResponseDemographics []DemographicResponseModel `gorm:"foreignKey:DemographicResponseResponseID;references:ResponseID" json:"response_demographics,omitempty"`

	ResponseCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:response_created_at" json:"response_created_at"`
	ResponseDeletedAt gorm.DeletedAt `gorm:"column:response_deleted_at;index" json:"response_deleted_at,omitempty"`
}

func (ResponseModel) TableName() string { return "responses" }

func (m *ResponseModel) BeforeSave(tx *gorm.DB) error {
	m.ResponsePeriodeSurvei = strings.ToUpper(strings.TrimSpace(m.ResponsePeriodeSurvei))
	if m.ResponsePeriodeSurvei == "" {
		return errors.New("response_periode_survei wajib diisi")
	}
	return nil
}
