package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationCategory string

const (
	NotificationCategorySystem      NotificationCategory = "SYSTEM"
	NotificationCategoryAppointment NotificationCategory = "APPOINTMENT"
	NotificationCategoryFinance     NotificationCategory = "FINANCE"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "UNREAD"
	NotificationStatusRead   NotificationStatus = "READ"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityNormal NotificationPriority = "NORMAL"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
)

type NotificationSendMode string

const (
	NotificationSendModeNow       NotificationSendMode = "NOW"
	NotificationSendModeScheduled NotificationSendMode = "SCHEDULED"
)

// Notification is addressed to a recipient user, optionally scheduled and
// optionally linked to a sender.
type Notification struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecipientID uuid.UUID            `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    *uuid.UUID           `gorm:"type:uuid;index" json:"sender_id,omitempty"`
	Title       string               `gorm:"type:varchar(255);not null" json:"title"`
	Message     string               `gorm:"type:text;not null" json:"message"`
	Category    NotificationCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Status      NotificationStatus   `gorm:"type:varchar(10);not null;default:'UNREAD';index" json:"status"`
	Priority    NotificationPriority `gorm:"type:varchar(10);not null;default:'NORMAL'" json:"priority"`
	SendMode    NotificationSendMode `gorm:"type:varchar(10);not null;default:'NOW'" json:"send_mode"`
	ScheduledAt *time.Time           `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Recipient User  `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
