package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(config.PaymentsConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		SuccessURL: "https://clinic.test/billing/success",
		CancelURL:  "https://clinic.test/billing/cancel",
	})
}

func TestCreateCheckout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body["plan"] != "plan_pro" {
			t.Errorf("plan = %v, want plan_pro", body["plan"])
		}
		if body["customer_email"] != "owner@clinic.test" {
			t.Errorf("customer_email = %v", body["customer_email"])
		}

		json.NewEncoder(w).Encode(CheckoutSession{
			ID:       "cs_123",
			URL:      "https://processor.test/pay/cs_123",
			Customer: "cus_456",
		})
	})

	session, err := client.CreateCheckout(context.Background(), "", "plan_pro", "owner@clinic.test")
	if err != nil {
		t.Fatalf("CreateCheckout error = %v", err)
	}
	if session.ID != "cs_123" || session.Customer != "cus_456" {
		t.Errorf("session = %+v", session)
	}
}

func TestCreateCheckoutRejectsIncompleteSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_123"})
	})

	_, err := client.CreateCheckout(context.Background(), "cus_1", "plan_pro", "owner@clinic.test")
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("CreateCheckout error = %v, want ErrUnexpectedResponse", err)
	}
}

func TestGetSubscription(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/subscriptions/sub_789" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Subscription{
			ID:               "sub_789",
			Customer:         "cus_456",
			Plan:             "plan_pro",
			Status:           "active",
			CurrentPeriodEnd: 1772323200,
		})
	})

	sub, err := client.GetSubscription(context.Background(), "sub_789")
	if err != nil {
		t.Fatalf("GetSubscription error = %v", err)
	}
	if sub.Status != "active" || sub.Plan != "plan_pro" {
		t.Errorf("sub = %+v", sub)
	}
}

func TestGetSubscriptionNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetSubscription(context.Background(), "sub_missing")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("GetSubscription error = %v, want ErrCustomerNotFound", err)
	}
}

func TestListInvoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("customer"); got != "cus_456" {
			t.Errorf("customer query = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []Invoice{
				{ID: "in_2", AmountDue: 19900, Currency: "brl", Status: "paid"},
				{ID: "in_1", AmountDue: 19900, Currency: "brl", Status: "paid"},
			},
		})
	})

	invoices, err := client.ListInvoices(context.Background(), "cus_456")
	if err != nil {
		t.Fatalf("ListInvoices error = %v", err)
	}
	if len(invoices) != 2 || invoices[0].ID != "in_2" {
		t.Errorf("invoices = %+v", invoices)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListInvoices(context.Background(), "cus_456")
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("ListInvoices error = %v, want ErrUnexpectedResponse", err)
	}
}
