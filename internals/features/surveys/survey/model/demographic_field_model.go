package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
)

type DemographicFieldModel struct {
	DemographicFieldID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:demographic_field_id" json:"demographic_field_id"`
	DemographicFieldSurveyID uuid.UUID `gorm:"type:uuid;not null;index;column:demographic_field_survey_id" json:"demographic_field_survey_id"`

	DemographicFieldLabel string `gorm:"type:text;not null;column:demographic_field_label" json:"demographic_field_label"`
	// text | dropdown | radio | checkbox | date | number (tanpa likert)
	DemographicFieldType     string `gorm:"type:varchar(20);not null;column:demographic_field_type" json:"demographic_field_type"`
	DemographicFieldRequired bool   `gorm:"not null;default:false;column:demographic_field_required" json:"demographic_field_required"`

	DemographicFieldOptions    pq.StringArray `gorm:"type:text[];column:demographic_field_options" json:"demographic_field_options,omitempty"`
	DemographicFieldOrderIndex int            `gorm:"type:integer;not null;default:0;column:demographic_field_order_index" json:"demographic_field_order_index"`

	DemographicFieldCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:demographic_field_created_at" json:"demographic_field_created_at"`
	DemographicFieldUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:demographic_field_updated_at" json:"demographic_field_updated_at"`
	DemographicFieldDeletedAt gorm.DeletedAt `gorm:"column:demographic_field_deleted_at;index" json:"demographic_field_deleted_at,omitempty"`
}

func (DemographicFieldModel) TableName() string { return "demographic_fields" }

func (m *DemographicFieldModel) BeforeSave(tx *gorm.DB) error {
	m.DemographicFieldLabel = strings.TrimSpace(m.DemographicFieldLabel)
	if m.DemographicFieldLabel == "" {
		return errors.New("demographic_field_label wajib diisi")
	}

	switch m.DemographicFieldType {
	case engine.QuestionTypeText, engine.QuestionTypeDropdown, engine.QuestionTypeRadio,
		engine.QuestionTypeCheckbox, engine.QuestionTypeDate, engine.QuestionTypeNumber:
	default:
		return errors.New("demographic_field_type tidak dikenal: " + m.DemographicFieldType)
	}

	if NeedsOptions(m.DemographicFieldType) && len(m.DemographicFieldOptions) == 0 {
		return errors.New("demographic_field_options wajib diisi untuk tipe " + m.DemographicFieldType)
	}
	return nil
}
