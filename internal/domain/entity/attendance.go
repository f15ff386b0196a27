package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttendanceType distinguishes intake evaluations from progress-note evolutions.
// Stored values are upper case; the wire format is lower case (see converter).
type AttendanceType string

const (
	AttendanceTypeEvaluation AttendanceType = "EVALUATION"
	AttendanceTypeEvolution  AttendanceType = "EVOLUTION"
)

// PaymentMethod is shared by attendance finance records and transactions.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// Attachment is one file reference embedded on an attendance. Blobs live in
// object storage; only metadata and the storage URL are persisted here.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Key  string `json:"key,omitempty"`
}

// Attachments is stored as a JSONB list, not separate rows.
type Attachments []Attachment

func (a Attachments) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Attachments) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []Attachment
	err := json.Unmarshal(bytes, &result)
	*a = Attachments(result)
	return err
}

// FinanceRecord is the optional finance sub-record embedded on an attendance.
// When LaunchToFinance is set, a mirrored Transaction row must exist.
type FinanceRecord struct {
	LaunchToFinance bool            `gorm:"not null;default:false" json:"launch_to_finance"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount"`
	PaymentMethod   *PaymentMethod  `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	Account         *string         `gorm:"type:varchar(100)" json:"account,omitempty"`
	Paid            bool            `gorm:"not null;default:false" json:"paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

// Attendance is a single clinical encounter, always owned by exactly one
// patient and one professional.
type Attendance struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID      `gorm:"type:uuid;not null;index" json:"professional_id"`
	Type           AttendanceType `gorm:"type:varchar(20);not null;index" json:"type"`
	Date           time.Time      `gorm:"not null;index" json:"date"`

	// Evaluation fields
	ChiefComplaint *string `gorm:"type:text" json:"chief_complaint,omitempty"`
	Anamnesis      *string `gorm:"type:text" json:"anamnesis,omitempty"`
	Diagnosis      *string `gorm:"type:text" json:"diagnosis,omitempty"`

	// Evolution fields
	CIDCode   *string `gorm:"type:varchar(20)" json:"cid_code,omitempty"`
	Evolution *string `gorm:"type:text" json:"evolution,omitempty"`

	Attachments Attachments   `gorm:"type:jsonb" json:"attachments,omitempty"`
	Finance     FinanceRecord `gorm:"embedded;embeddedPrefix:finance_" json:"finance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional User          `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AttendanceID" json:"transactions,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// IsEvaluation reports whether the attendance can originate a treatment plan.
func (a *Attendance) IsEvaluation() bool {
	return a.Type == AttendanceTypeEvaluation
}
