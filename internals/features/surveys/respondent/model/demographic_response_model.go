package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DemographicResponseModel struct {
	DemographicResponseID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:demographic_response_id" json:"demographic_response_id"`
	DemographicResponseResponseID uuid.UUID `gorm:"type:uuid;not null;index;column:demographic_response_response_id" json:"demographic_response_response_id"`
	DemographicResponseFieldID    uuid.UUID `gorm:"type:uuid;not null;index;column:demographic_response_field_id" json:"demographic_response_field_id"`

	// Nilai jawaban apa adanya (string, angka, atau array untuk checkbox).
	DemographicResponseValue datatypes.JSON `gorm:"type:jsonb;column:demographic_response_value" json:"demographic_response_value,omitempty"`

	DemographicResponseCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:demographic_response_created_at" json:"demographic_response_created_at"`
}

func (DemographicResponseModel) TableName() string { return "demographic_responses" }
