package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RespondentModel menyimpan identitas ringan pengisi survei. Pengisian publik
// tidak butuh akun; nama/kontak opsional dan hanya untuk tindak lanjut.
type RespondentModel struct {
	RespondentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:respondent_id" json:"respondent_id"`

	RespondentName    *string `gorm:"type:text;column:respondent_name" json:"respondent_name,omitempty"`
	RespondentContact *string `gorm:"type:text;column:respondent_contact" json:"respondent_contact,omitempty"`
	// Akun terdaftar (opsional), diisi bila pengisi sedang login.
	RespondentUserID *uuid.UUID `gorm:"type:uuid;column:respondent_user_id;index" json:"respondent_user_id,omitempty"`

	RespondentCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:respondent_created_at" json:"respondent_created_at"`
	RespondentUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:respondent_updated_at" json:"respondent_updated_at"`
}

func (RespondentModel) TableName() string { return "respondents" }

func (m *RespondentModel) BeforeSave(tx *gorm.DB) error {
	if m.RespondentName != nil {
		n := strings.TrimSpace(*m.RespondentName)
		if n == "" {
			m.RespondentName = nil
		} else {
			m.RespondentName = &n
		}
	}
	return nil
}
