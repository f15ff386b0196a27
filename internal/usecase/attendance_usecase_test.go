package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakePatientRepo struct {
	patient   *entity.Patient
	deleteErr error
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepo) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) List(ctx context.Context, db *gorm.DB, q entity.ListQuery) ([]entity.Patient, int64, error) {
	return nil, 0, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return f.deleteErr
}

type fakeAttendanceRepo struct {
	createdID  uuid.UUID
	attendance *entity.Attendance
	deleteErr  error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	f.createdID = uuid.New()
	attendance.ID = f.createdID
	return nil
}

func (f *fakeAttendanceRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error) {
	return f.attendance, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.AttendanceFilter) ([]entity.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeAttendanceRepo) ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.AttendanceReportRow, error) {
	return nil, nil
}

type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error {
	f.created = append(f.created, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CountByAttendanceID(ctx context.Context, db *gorm.DB, attendanceID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepo) List(ctx context.Context, db *gorm.DB, q entity.ListQuery, filter *entity.TransactionFilter) ([]entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, db *gorm.DB, transaction *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return nil
}

func (f *fakeTransactionRepo) ReportRows(ctx context.Context, db *gorm.DB, start, end time.Time) ([]entity.TransactionReportRow, error) {
	return nil, nil
}

type fakeAuditService struct {
	records int
}

func (f *fakeAuditService) Record(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	f.records++
	return nil
}

type fakeAttachmentStore struct {
	deletedKeys []string
}

func (f *fakeAttachmentStore) PresignUpload(ctx context.Context, key, contentType string, size int64) (string, error) {
	return "https://storage.test/upload/" + key, nil
}

func (f *fakeAttachmentStore) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://storage.test/" + key, nil
}

func (f *fakeAttachmentStore) Delete(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

func (f *fakeAttachmentStore) TTL() time.Duration {
	return 5 * time.Minute
}

func attendanceCreateRequest(finance *dto.FinanceRequest) *dto.CreateAttendanceRequest {
	return &dto.CreateAttendanceRequest{
		PatientID:      uuid.New(),
		ProfessionalID: uuid.New(),
		Type:           "evaluation",
		Date:           time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC),
		Finance:        finance,
	}
}

func TestAttendanceCreateMirrorsFinanceTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	patientRepo := &fakePatientRepo{patient: &entity.Patient{ID: uuid.New()}}
	attendanceRepo := &fakeAttendanceRepo{}
	transactionRepo := &fakeTransactionRepo{}
	audit := &fakeAuditService{}

	uc := NewAttendanceUsecase(db, newTestLogger(), attendanceRepo, patientRepo, transactionRepo, audit, &fakeAttachmentStore{})

	amount := decimal.NewFromInt(250)
	resp, err := uc.Create(context.Background(), attendanceCreateRequest(&dto.FinanceRequest{
		LaunchToFinance: true,
		Amount:          amount,
		Paid:            true,
	}))
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if len(transactionRepo.created) != 1 {
		t.Fatalf("transaction creates = %d, want exactly 1", len(transactionRepo.created))
	}
	tx := transactionRepo.created[0]
	if tx.Kind != entity.TransactionKindIncome {
		t.Errorf("Kind = %s, want INCOME", tx.Kind)
	}
	if tx.AttendanceID == nil || *tx.AttendanceID != attendanceRepo.createdID {
		t.Errorf("AttendanceID = %v, want %s", tx.AttendanceID, attendanceRepo.createdID)
	}
	if !tx.Amount.Equal(amount) {
		t.Errorf("Amount = %v, want %v", tx.Amount, amount)
	}
	if tx.Category != "attendance" {
		t.Errorf("Category = %s, want attendance", tx.Category)
	}
	if resp.ID != attendanceRepo.createdID {
		t.Errorf("response ID = %s, want %s", resp.ID, attendanceRepo.createdID)
	}
	if audit.records != 1 {
		t.Errorf("audit records = %d, want 1", audit.records)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAttendanceCreateWithoutFinanceSkipsTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	patientRepo := &fakePatientRepo{patient: &entity.Patient{ID: uuid.New()}}
	transactionRepo := &fakeTransactionRepo{}

	uc := NewAttendanceUsecase(db, newTestLogger(), &fakeAttendanceRepo{}, patientRepo, transactionRepo, &fakeAuditService{}, &fakeAttachmentStore{})

	if _, err := uc.Create(context.Background(), attendanceCreateRequest(nil)); err != nil {
		t.Fatalf("Create error = %v", err)
	}

	// launch_to_finance false with an amount set still stays off the ledger.
	if _, err := uc.Create(context.Background(), attendanceCreateRequest(&dto.FinanceRequest{
		LaunchToFinance: false,
		Amount:          decimal.NewFromInt(100),
	})); err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if len(transactionRepo.created) != 0 {
		t.Errorf("transaction creates = %d, want 0", len(transactionRepo.created))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAttendanceCreateRejectsNonPositiveFinanceAmount(t *testing.T) {
	db, _ := newTestDB(t)

	transactionRepo := &fakeTransactionRepo{}
	uc := NewAttendanceUsecase(db, newTestLogger(), &fakeAttendanceRepo{}, &fakePatientRepo{}, transactionRepo, &fakeAuditService{}, &fakeAttachmentStore{})

	_, err := uc.Create(context.Background(), attendanceCreateRequest(&dto.FinanceRequest{
		LaunchToFinance: true,
		Amount:          decimal.Zero,
	}))
	if err != ErrFinanceAmountNotPositive {
		t.Fatalf("err = %v, want ErrFinanceAmountNotPositive", err)
	}
	if len(transactionRepo.created) != 0 {
		t.Errorf("transaction creates = %d, want 0", len(transactionRepo.created))
	}
}

func TestAttendanceDeleteMapsForeignKeyToConflict(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	attendance := &entity.Attendance{ID: uuid.New()}
	attendanceRepo := &fakeAttendanceRepo{
		attendance: attendance,
		deleteErr: &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "treatment_plans_attendance_id_fkey",
		},
	}

	uc := NewAttendanceUsecase(db, newTestLogger(), attendanceRepo, &fakePatientRepo{}, &fakeTransactionRepo{}, &fakeAuditService{}, &fakeAttachmentStore{})

	if err := uc.Delete(context.Background(), attendance.ID); err != ErrAttendanceInUse {
		t.Fatalf("err = %v, want ErrAttendanceInUse", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAttendanceDeleteReleasesAttachmentBlobs(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	attendance := &entity.Attendance{
		ID: uuid.New(),
		Attachments: entity.Attachments{
			{ID: "a1", Name: "exam.pdf", Key: "attachments/x/a1-exam.pdf"},
			{ID: "a2", Name: "note.txt"},
		},
	}
	store := &fakeAttachmentStore{}

	uc := NewAttendanceUsecase(db, newTestLogger(), &fakeAttendanceRepo{attendance: attendance}, &fakePatientRepo{}, &fakeTransactionRepo{}, &fakeAuditService{}, store)

	if err := uc.Delete(context.Background(), attendance.ID); err != nil {
		t.Fatalf("Delete error = %v", err)
	}

	// Only attachments that carry a storage key are released.
	if len(store.deletedKeys) != 1 || store.deletedKeys[0] != "attachments/x/a1-exam.pdf" {
		t.Errorf("deleted keys = %v, want the keyed attachment only", store.deletedKeys)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
