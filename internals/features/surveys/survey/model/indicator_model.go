package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IndicatorModel struct {
	IndicatorID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:indicator_id" json:"indicator_id"`
	IndicatorSurveyID uuid.UUID `gorm:"type:uuid;not null;index;column:indicator_survey_id" json:"indicator_survey_id"`

	IndicatorTitle       string  `gorm:"type:text;not null;column:indicator_title" json:"indicator_title"`
	IndicatorDescription *string `gorm:"type:text;column:indicator_description" json:"indicator_description,omitempty"`

	// Bobot indikator dalam persen (survei weighted). 0 untuk unweighted.
	IndicatorWeight     int `gorm:"type:integer;not null;default:0;column:indicator_weight" json:"indicator_weight"`
	IndicatorOrderIndex int `gorm:"type:integer;not null;default:0;column:indicator_order_index" json:"indicator_order_index"`

	IndicatorQuestions []QuestionModel `gorm:"foreignKey:QuestionIndicatorID;references:IndicatorID" json:"indicator_questions,omitempty"`

	IndicatorCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:indicator_created_at" json:"indicator_created_at"`
	IndicatorUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:indicator_updated_at" json:"indicator_updated_at"`
	IndicatorDeletedAt gorm.DeletedAt `gorm:"column:indicator_deleted_at;index" json:"indicator_deleted_at,omitempty"`
}

func (IndicatorModel) TableName() string { return "indicators" }

func (m *IndicatorModel) BeforeSave(tx *gorm.DB) error {
	m.IndicatorTitle = strings.TrimSpace(m.IndicatorTitle)
	if m.IndicatorTitle == "" {
		return errors.New("indicator_title wajib diisi")
	}
	if m.IndicatorWeight < 0 || m.IndicatorWeight > 100 {
		return errors.New("indicator_weight harus 0-100")
	}
	return nil
}
