package service

import (
	"context"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who changed which clinical record. Entries are written
// inside the caller's transaction under a savepoint: a committed change carries
// its audit entry, while a failed audit insert rolls back to the savepoint and
// leaves the clinical change intact.
type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	// The savepoint keeps a failed audit insert from aborting the rest of
	// the transaction on Postgres.
	tx.SavePoint("audit_entry")
	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		tx.RollbackTo("audit_entry")
		s.log.Warnf("Failed to write audit log for %s %s: %+v", entityName, entityID, err)
		return err
	}

	return nil
}
