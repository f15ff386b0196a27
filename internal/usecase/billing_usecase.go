package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/pkg/payments"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoSubscription = errors.New("no active subscription for this account")

type BillingUsecase interface {
	CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetSubscription(ctx context.Context) (*dto.SubscriptionResponse, error)
	ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error)
	CancelSubscription(ctx context.Context) (*dto.SubscriptionResponse, error)
}

type billingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	billingRepo repository.BillingAccountRepository
	payments    *payments.Client
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingAccountRepository,
	paymentsClient *payments.Client,
) BillingUsecase {
	return &billingUsecase{
		db:          db,
		log:         log,
		billingRepo: billingRepo,
		payments:    paymentsClient,
	}
}

// CreateCheckout starts a processor-hosted checkout for the logged-in user
// and records the pending plan locally so the account can be reconciled.
func (u *billingUsecase) CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	account, err := u.billingRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find billing account for %s: %+v", userID, err)
		return nil, err
	}

	var customerRef string
	if account != nil {
		customerRef = account.CustomerRef
	}

	session, err := u.payments.CreateCheckout(ctx, customerRef, req.PlanRef, email)
	if err != nil {
		u.log.Warnf("Failed to create checkout session for %s: %+v", userID, err)
		return nil, err
	}

	updated := &entity.BillingAccount{
		UserID:      userID,
		CustomerRef: session.Customer,
		PlanRef:     req.PlanRef,
		Status:      "pending",
	}
	if account != nil {
		updated.SubscriptionRef = account.SubscriptionRef
	}

	if err := u.billingRepo.Upsert(ctx, u.db, updated); err != nil {
		u.log.Warnf("Failed to upsert billing account for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// GetSubscription refreshes the local mirror from the processor and returns it.
func (u *billingUsecase) GetSubscription(ctx context.Context) (*dto.SubscriptionResponse, error) {
	account, err := u.requireAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account.SubscriptionRef == "" {
		return nil, ErrNoSubscription
	}

	sub, err := u.payments.GetSubscription(ctx, account.SubscriptionRef)
	if err != nil {
		u.log.Warnf("Failed to fetch subscription %s: %+v", account.SubscriptionRef, err)
		return nil, err
	}

	return u.mirrorSubscription(ctx, account, sub)
}

func (u *billingUsecase) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	account, err := u.requireAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account.CustomerRef == "" {
		return nil, ErrNoSubscription
	}

	invoices, err := u.payments.ListInvoices(ctx, account.CustomerRef)
	if err != nil {
		u.log.Warnf("Failed to list invoices for %s: %+v", account.CustomerRef, err)
		return nil, err
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		responses[i] = dto.InvoiceResponse{
			InvoiceRef: invoice.ID,
			AmountDue:  invoice.AmountDue,
			Currency:   invoice.Currency,
			Status:     invoice.Status,
			HostedURL:  invoice.HostedURL,
			CreatedAt:  time.Unix(invoice.CreatedUnix, 0).UTC(),
		}
	}

	return responses, nil
}

func (u *billingUsecase) CancelSubscription(ctx context.Context) (*dto.SubscriptionResponse, error) {
	account, err := u.requireAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account.SubscriptionRef == "" {
		return nil, ErrNoSubscription
	}

	sub, err := u.payments.CancelSubscription(ctx, account.SubscriptionRef)
	if err != nil {
		u.log.Warnf("Failed to cancel subscription %s: %+v", account.SubscriptionRef, err)
		return nil, err
	}

	return u.mirrorSubscription(ctx, account, sub)
}

func (u *billingUsecase) requireAccount(ctx context.Context) (*entity.BillingAccount, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	account, err := u.billingRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find billing account for %s: %+v", userID, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrNoSubscription
	}

	return account, nil
}

// mirrorSubscription writes the processor's summary back to the local account
// and converts it to the wire shape.
func (u *billingUsecase) mirrorSubscription(ctx context.Context, account *entity.BillingAccount, sub *payments.Subscription) (*dto.SubscriptionResponse, error) {
	var periodEnd *time.Time
	if sub.CurrentPeriodEnd > 0 {
		t := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		periodEnd = &t
	}

	account.SubscriptionRef = sub.ID
	account.PlanRef = sub.Plan
	account.Status = sub.Status
	account.CurrentPeriodEnd = periodEnd

	if err := u.billingRepo.Upsert(ctx, u.db, account); err != nil {
		u.log.Warnf("Failed to mirror subscription for %s: %+v", account.UserID, err)
		return nil, err
	}

	return &dto.SubscriptionResponse{
		SubscriptionRef:  sub.ID,
		PlanRef:          sub.Plan,
		Status:           sub.Status,
		CurrentPeriodEnd: periodEnd,
	}, nil
}
