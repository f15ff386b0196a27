package entity

import (
	"time"

	"github.com/google/uuid"
)

// TreatmentPlan is a structured care plan tied to one patient and one
// originating evaluation-type attendance. The evaluation-only rule is
// enforced by the usecase, not by a database constraint.
type TreatmentPlan struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID            uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	AttendanceID         uuid.UUID `gorm:"type:uuid;not null;index" json:"attendance_id"`
	ProcedureDescription string    `gorm:"type:text;not null" json:"procedure_description"`
	SessionCount         int       `gorm:"not null" json:"session_count"`
	Resource             *string   `gorm:"type:text" json:"resource,omitempty"`
	Conducts             *string   `gorm:"type:text" json:"conducts,omitempty"`
	Objectives           *string   `gorm:"type:text" json:"objectives,omitempty"`
	Prognosis            *string   `gorm:"type:text" json:"prognosis,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Attendance Attendance `gorm:"foreignKey:AttendanceID" json:"attendance,omitempty"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}
