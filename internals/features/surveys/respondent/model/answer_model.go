package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnswerModel struct {
	AnswerID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:answer_id" json:"answer_id"`
	AnswerResponseID uuid.UUID `gorm:"type:uuid;not null;index;column:answer_response_id" json:"answer_response_id"`
	AnswerQuestionID uuid.UUID `gorm:"type:uuid;not null;index;column:answer_question_id" json:"answer_question_id"`

	// Skor mentah untuk soal likert; 0 untuk tipe lain.
	AnswerScore int `gorm:"type:integer;not null;default:0;column:answer_score" json:"answer_score"`
	// Nilai jawaban non-likert (teks, pilihan, tanggal, angka, array checkbox).
	AnswerValue datatypes.JSON `gorm:"type:jsonb;column:answer_value" json:"answer_value,omitempty"`

	AnswerCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:answer_created_at" json:"answer_created_at"`
}

func (AnswerModel) TableName() string { return "answers" }
