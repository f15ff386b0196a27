package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrAmountNotPositive    = errors.New("amount must be greater than zero")
	ErrTransactionHasMirror = errors.New("transaction is linked to an attendance and cannot be deleted directly")
)

type TransactionUsecase interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	List(ctx context.Context, q entity.ListQuery, filter *entity.TransactionFilter) ([]dto.TransactionResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	transactionRepo repository.TransactionRepository
}

func NewTransactionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactionRepo repository.TransactionRepository,
) TransactionUsecase {
	return &transactionUsecase{
		db:              db,
		log:             log,
		transactionRepo: transactionRepo,
	}
}

func (u *transactionUsecase) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	transaction, err := converter.TransactionFromCreateRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnumValue, err)
	}

	if !transaction.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.transactionRepo.Create(ctx, tx, transaction); err != nil {
		u.log.Warnf("Failed to create transaction: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	transaction, err := u.transactionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find transaction %s: %+v", id, err)
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) List(ctx context.Context, q entity.ListQuery, filter *entity.TransactionFilter) ([]dto.TransactionResponse, int64, error) {
	transactions, total, err := u.transactionRepo.List(ctx, u.db, q, filter)
	if err != nil {
		u.log.Warnf("Failed to list transactions: %+v", err)
		return nil, 0, err
	}

	return converter.TransactionsToResponses(transactions), total, nil
}

func (u *transactionUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transaction, err := u.transactionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find transaction %s: %+v", id, err)
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	if err := converter.ApplyTransactionUpdate(transaction, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnumValue, err)
	}
	if !transaction.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	if err := u.transactionRepo.Update(ctx, tx, transaction); err != nil {
		u.log.Warnf("Failed to update transaction %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transaction, err := u.transactionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find transaction %s: %+v", id, err)
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	// Mirrored lines follow their attendance; deleting them here would break
	// the finance sync invariant.
	if transaction.AttendanceID != nil {
		return ErrTransactionHasMirror
	}

	if err := u.transactionRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete transaction %s: %+v", id, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
