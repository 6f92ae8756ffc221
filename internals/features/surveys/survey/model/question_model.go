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

type QuestionModel struct {
	QuestionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionIndicatorID uuid.UUID `gorm:"type:uuid;not null;index;column:question_indicator_id" json:"question_indicator_id"`

	QuestionText string `gorm:"type:text;not null;column:question_text" json:"question_text"`
	// likert-4 | likert-6 | text | dropdown | radio | checkbox | date | number
	QuestionType     string `gorm:"type:varchar(20);not null;column:question_type" json:"question_type"`
	QuestionRequired bool   `gorm:"not null;default:false;column:question_required" json:"question_required"`
	// Bobot soal dalam persen untuk mode weighted, skala 1-100.
	QuestionWeight int `gorm:"type:integer;not null;default:100;column:question_weight" json:"question_weight"`

	// Opsi jawaban untuk dropdown/radio/checkbox.
	QuestionOptions    pq.StringArray `gorm:"type:text[];column:question_options" json:"question_options,omitempty"`
	QuestionOrderIndex int            `gorm:"type:integer;not null;default:0;column:question_order_index" json:"question_order_index"`

	QuestionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:question_updated_at" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

var validQuestionTypes = map[string]bool{
	engine.QuestionTypeLikert4:  true,
	engine.QuestionTypeLikert6:  true,
	engine.QuestionTypeText:     true,
	engine.QuestionTypeDropdown: true,
	engine.QuestionTypeRadio:    true,
	engine.QuestionTypeCheckbox: true,
	engine.QuestionTypeDate:     true,
	engine.QuestionTypeNumber:   true,
}

// NeedsOptions: tipe pilihan wajib punya daftar opsi.
func NeedsOptions(questionType string) bool {
	return questionType == engine.QuestionTypeDropdown ||
		questionType == engine.QuestionTypeRadio ||
		questionType == engine.QuestionTypeCheckbox
}

func (m *QuestionModel) BeforeSave(tx *gorm.DB) error {
	m.QuestionText = strings.TrimSpace(m.QuestionText)
	if m.QuestionText == "" {
		return errors.New("question_text wajib diisi")
	}
	if !validQuestionTypes[m.QuestionType] {
		return errors.New("question_type tidak dikenal: " + m.QuestionType)
	}
	if m.QuestionWeight < 1 || m.QuestionWeight > 100 {
		return errors.New("question_weight harus 1-100")
	}
	if NeedsOptions(m.QuestionType) && len(m.QuestionOptions) == 0 {
		return errors.New("question_options wajib diisi untuk tipe " + m.QuestionType)
	}
	return nil
}
