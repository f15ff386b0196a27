package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"clinic-management-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeAuditLogRepo struct {
	createErr error
	created   []*entity.AuditLog
}

func (f *fakeAuditLogRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, log)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func newAuditTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open error = %v", err)
	}
	return db, mock
}

func newAuditTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditRecordWritesEntry(t *testing.T) {
	db, mock := newAuditTestDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("SAVEPOINT audit_entry").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := &fakeAuditLogRepo{}
	svc := NewAuditService(newAuditTestLogger(), repo)

	userID := uuid.New()
	tx := db.Begin()
	if err := svc.Record(context.Background(), tx, &userID, entity.AuditActionPatientCreate, "patient", uuid.NewString(), nil, map[string]string{"name": "Ana"}); err != nil {
		t.Fatalf("Record error = %v", err)
	}
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("Commit error = %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("audit creates = %d, want 1", len(repo.created))
	}
	entry := repo.created[0]
	if entry.UserID == nil || *entry.UserID != userID {
		t.Errorf("UserID = %v, want %s", entry.UserID, userID)
	}
	if entry.Metadata["entity"] != "patient" {
		t.Errorf("Metadata entity = %v, want patient", entry.Metadata["entity"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAuditRecordFailureKeepsTransactionUsable(t *testing.T) {
	db, mock := newAuditTestDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("SAVEPOINT audit_entry").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT audit_entry").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := &fakeAuditLogRepo{createErr: errors.New("insert failed")}
	svc := NewAuditService(newAuditTestLogger(), repo)

	tx := db.Begin()
	if err := svc.Record(context.Background(), tx, nil, entity.AuditActionPatientDelete, "patient", uuid.NewString(), nil, nil); err == nil {
		t.Fatal("expected Record error")
	}

	// The surrounding transaction still commits after a failed audit write.
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("Commit error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
