// Package payments provides a minimal HTTP client for the external payment
// processor that owns plans, subscriptions and invoices. The application only
// mirrors summary state; card data never touches this service.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"clinic-management-api/config"
)

var (
	ErrCustomerNotFound     = errors.New("payments: customer not found")
	ErrSubscriptionNotFound = errors.New("payments: subscription not found")
	ErrUnexpectedResponse   = errors.New("payments: unexpected response from processor")
)

// Client is a lightweight payment-processor HTTP client.
type Client struct {
	baseURL    string
	apiKey     string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

func New(cfg config.PaymentsConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CheckoutSession is the processor-hosted payment page for a plan purchase.
type CheckoutSession struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Customer string `json:"customer"`
}

// Subscription mirrors the processor's subscription summary.
type Subscription struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

// Invoice mirrors a processor invoice line.
type Invoice struct {
	ID          string `json:"id"`
	AmountDue   int64  `json:"amount_due"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	HostedURL   string `json:"hosted_invoice_url"`
	CreatedUnix int64  `json:"created"`
}

// CreateCheckout starts a checkout session for the given customer and plan.
// An empty customerRef asks the processor to create a new customer.
func (c *Client) CreateCheckout(ctx context.Context, customerRef, planRef, customerEmail string) (*CheckoutSession, error) {
	reqBody := map[string]any{
		"customer":       customerRef,
		"customer_email": customerEmail,
		"plan":           planRef,
		"success_url":    c.successURL,
		"cancel_url":     c.cancelURL,
	}

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", reqBody, &session); err != nil {
		return nil, fmt.Errorf("payments checkout: %w", err)
	}
	if session.ID == "" || session.URL == "" {
		return nil, ErrUnexpectedResponse
	}
	return &session, nil
}

// GetSubscription fetches the subscription summary for a customer.
func (c *Client) GetSubscription(ctx context.Context, subscriptionRef string) (*Subscription, error) {
	var sub Subscription
	err := c.do(ctx, http.MethodGet, "/v1/subscriptions/"+subscriptionRef, nil, &sub)
	if err != nil {
		return nil, fmt.Errorf("payments subscription: %w", err)
	}
	if sub.ID == "" {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

// ListInvoices returns the invoices issued to a customer, newest first.
func (c *Client) ListInvoices(ctx context.Context, customerRef string) ([]Invoice, error) {
	var resp struct {
		Data []Invoice `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/invoices?customer="+customerRef, nil, &resp); err != nil {
		return nil, fmt.Errorf("payments invoices: %w", err)
	}
	return resp.Data, nil
}

// CancelSubscription cancels at period end and returns the updated summary.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionRef string) (*Subscription, error) {
	var sub Subscription
	err := c.do(ctx, http.MethodDelete, "/v1/subscriptions/"+subscriptionRef, nil, &sub)
	if err != nil {
		return nil, fmt.Errorf("payments cancel: %w", err)
	}
	return &sub, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrCustomerNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
