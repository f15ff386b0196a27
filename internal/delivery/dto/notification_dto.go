package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNotificationRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=255"`
	Message     string     `json:"message" validate:"required"`
	Category    string     `json:"category" validate:"required,oneof=system appointment finance"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low normal high"`
	SendMode    *string    `json:"send_mode" validate:"omitempty,oneof=now scheduled"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type UpdateNotificationRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Message     *string    `json:"message" validate:"omitempty,min=1"`
	Category    *string    `json:"category" validate:"omitempty,oneof=system appointment finance"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low normal high"`
	SendMode    *string    `json:"send_mode" validate:"omitempty,oneof=now scheduled"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// Response DTOs

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	SenderID    *uuid.UUID `json:"sender_id,omitempty"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	SendMode    string     `json:"send_mode"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
