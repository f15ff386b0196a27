package dto

import "time"

// Request DTOs

type CheckoutRequest struct {
	PlanRef string `json:"plan_ref" validate:"required"`
}

// Response DTOs

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type SubscriptionResponse struct {
	SubscriptionRef  string     `json:"subscription_ref"`
	PlanRef          string     `json:"plan_ref"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

type InvoiceResponse struct {
	InvoiceRef string    `json:"invoice_ref"`
	AmountDue  int64     `json:"amount_due"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	HostedURL  string    `json:"hosted_url"`
	CreatedAt  time.Time `json:"created_at"`
}
