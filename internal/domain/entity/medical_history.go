package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalHistory is one entry of a patient's clinical history, the
// /patients/{id}/history sub-resource.
type MedicalHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	RecordedAt  time.Time `gorm:"not null;index" json:"recorded_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}
