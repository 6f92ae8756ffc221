package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/scoring/engine"
)

type SurveyModel struct {
	// ============ PK ============
	SurveyID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:survey_id" json:"survey_id"`

	// ============ Identitas ============
	SurveyTitle       string  `gorm:"type:text;not null;column:survey_title" json:"survey_title"`
	SurveyDescription *string `gorm:"type:text;column:survey_description" json:"survey_description,omitempty"`
	SurveyIsActive    bool    `gorm:"not null;default:true;column:survey_is_active" json:"survey_is_active"`

	// weighted | unweighted
	SurveyType string `gorm:"type:varchar(20);not null;default:'unweighted';column:survey_type" json:"survey_type"`
	// calculate | non_calculate
	SurveyCategory string `gorm:"type:varchar(20);not null;default:'calculate';column:survey_category" json:"survey_category"`

	// ============ Periode ============
	// quarterly | semester | annual
	SurveyPeriodType string `gorm:"type:varchar(20);not null;default:'quarterly';column:survey_period_type" json:"survey_period_type"`
	SurveyPeriodYear int    `gorm:"type:integer;not null;column:survey_period_year" json:"survey_period_year"`
	// Kode pendek otoritatif: "Q1".."Q4", "S1"/"S2", kosong untuk tahunan.
	SurveyPeriodValue string `gorm:"type:varchar(10);column:survey_period_value" json:"survey_period_value"`
	// Kolom legacy, hanya dibaca saat survey_period_value kosong.
	SurveyPeriodQuarter  *string `gorm:"type:varchar(5);column:survey_period_quarter" json:"survey_period_quarter,omitempty"`
	SurveyPeriodSemester *string `gorm:"type:varchar(5);column:survey_period_semester" json:"survey_period_semester,omitempty"`

	// ============ Relasi ============
	SurveyIndicators        []IndicatorModel        `gorm:"foreignKey:IndicatorSurveyID;references:SurveyID" json:"survey_indicators,omitempty"`
	SurveyDemographicFields []DemographicFieldModel `gorm:"foreignKey:DemographicFieldSurveyID;references:SurveyID" json:"survey_demographic_fields,omitempty"`

	// ============ Audit / Soft delete ============
	SurveyCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:survey_created_at" json:"survey_created_at"`
	SurveyUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:survey_updated_at" json:"survey_updated_at"`
	SurveyDeletedAt gorm.DeletedAt `gorm:"column:survey_deleted_at;index" json:"survey_deleted_at,omitempty"`
}

func (SurveyModel) TableName() string { return "surveys" }

// ============ Hooks: validasi & normalisasi ringan ============
func (m *SurveyModel) BeforeSave(tx *gorm.DB) error {
	m.SurveyTitle = strings.TrimSpace(m.SurveyTitle)
	if m.SurveyTitle == "" {
		return errors.New("survey_title wajib diisi")
	}

	if m.SurveyType != engine.SurveyTypeWeighted && m.SurveyType != engine.SurveyTypeUnweighted {
		return errors.New("survey_type harus weighted atau unweighted")
	}
	if m.SurveyCategory != engine.SurveyCategoryCalculate && m.SurveyCategory != engine.SurveyCategoryNonCalculate {
		return errors.New("survey_category harus calculate atau non_calculate")
	}

	switch m.SurveyPeriodType {
	case engine.PeriodQuarterly, engine.PeriodSemester, engine.PeriodAnnual:
	default:
		return errors.New("survey_period_type harus quarterly, semester, atau annual")
	}

	m.SurveyPeriodValue = strings.ToUpper(strings.TrimSpace(m.SurveyPeriodValue))
	return nil
}

// Period memetakan kolom periode ke bentuk yang dimengerti mesin skoring.
func (m *SurveyModel) Period() engine.SurveyPeriod {
	p := engine.SurveyPeriod{
		Type:  m.SurveyPeriodType,
		Year:  m.SurveyPeriodYear,
		Value: m.SurveyPeriodValue,
	}
	if m.SurveyPeriodQuarter != nil {
		p.Quarter = *m.SurveyPeriodQuarter
	}
	if m.SurveyPeriodSemester != nil {
		p.Semester = *m.SurveyPeriodSemester
	}
	return p
}

// PeriodKey mengembalikan kunci kanonik "{code}-{year}" untuk stempel
// kolom periode_survei pada respons.
func (m *SurveyModel) PeriodKey() string {
	return m.Period().Key()
}
