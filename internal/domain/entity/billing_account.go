package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingAccount mirrors summary state owned by the external payment
// processor. Only opaque references are stored; plans, cards and invoices
// live on the processor side.
type BillingAccount struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CustomerRef      string     `gorm:"type:varchar(255)" json:"customer_ref"`
	PlanRef          string     `gorm:"type:varchar(255)" json:"plan_ref"`
	SubscriptionRef  string     `gorm:"type:varchar(255)" json:"subscription_ref"`
	Status           string     `gorm:"type:varchar(50)" json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BillingAccount) TableName() string {
	return "billing_accounts"
}
