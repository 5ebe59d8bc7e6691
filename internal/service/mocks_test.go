package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"github.com/nyayasetu/backend/internal/database"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
)

// passthroughTx runs the function directly without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn database.TxFunc) error {
	return fn(nil)
}

type mockLawyerRepo struct {
	mock.Mock
}

func (m *mockLawyerRepo) FindByID(ctx context.Context, id int64) (*model.Lawyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *mockLawyerRepo) FindByEmail(ctx context.Context, email string) (*model.Lawyer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *mockLawyerRepo) Create(ctx context.Context, params model.CreateLawyerParams) (*model.Lawyer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *mockLawyerRepo) Update(ctx context.Context, id int64, params model.UpdateLawyerParams) (*model.Lawyer, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *mockLawyerRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLawyerRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLawyerRepo) WithTx(tx *sqlx.Tx) repository.LawyerRepository {
	return m
}

type mockOTPRepo struct {
	mock.Mock
}

func (m *mockOTPRepo) Create(ctx context.Context, params model.CreateOTPParams) (*model.OTPVerification, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OTPVerification), args.Error(1)
}

func (m *mockOTPRepo) FindActive(ctx context.Context, email, code string) (*model.OTPVerification, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OTPVerification), args.Error(1)
}

func (m *mockOTPRepo) MarkUsed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOTPRepo) DeleteOthers(ctx context.Context, email string, exceptID int64) (int64, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOTPRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOTPRepo) WithTx(tx *sqlx.Tx) repository.OTPRepository {
	return m
}

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Client, error) {
	args := m.Called(ctx, id, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Client, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *mockClientRepo) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Client, error) {
	args := m.Called(ctx, lawyerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *mockClientRepo) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) Update(ctx context.Context, id, lawyerID int64, params model.UpdateClientParams) (*model.Client, error) {
	args := m.Called(ctx, id, lawyerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *mockClientRepo) Delete(ctx context.Context, id, lawyerID int64) (int64, error) {
	args := m.Called(ctx, id, lawyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepo) WithTx(tx *sqlx.Tx) repository.ClientRepository {
	return m
}

type mockCaseRepo struct {
	mock.Mock
}

func (m *mockCaseRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Case, error) {
	args := m.Called(ctx, id, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *mockCaseRepo) FindByNumber(ctx context.Context, caseNumber string, lawyerID int64) (*model.Case, error) {
	args := m.Called(ctx, caseNumber, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *mockCaseRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Case, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *mockCaseRepo) SearchByTitle(ctx context.Context, lawyerID int64, title string) ([]model.Case, error) {
	args := m.Called(ctx, lawyerID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *mockCaseRepo) SearchByCourt(ctx context.Context, lawyerID int64, court string) ([]model.Case, error) {
	args := m.Called(ctx, lawyerID, court)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *mockCaseRepo) SearchByType(ctx context.Context, lawyerID int64, caseType string) ([]model.Case, error) {
	args := m.Called(ctx, lawyerID, caseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *mockCaseRepo) SearchByClientName(ctx context.Context, lawyerID int64, clientName string) ([]model.Case, error) {
	args := m.Called(ctx, lawyerID, clientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *mockCaseRepo) Create(ctx context.Context, params model.CreateCaseParams) (*model.Case, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *mockCaseRepo) UpdateByNumber(ctx context.Context, caseNumber string, lawyerID int64, params model.UpdateCaseParams) (*model.Case, error) {
	args := m.Called(ctx, caseNumber, lawyerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *mockCaseRepo) DeleteByNumber(ctx context.Context, caseNumber string, lawyerID int64) (int64, error) {
	args := m.Called(ctx, caseNumber, lawyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCaseRepo) WithTx(tx *sqlx.Tx) repository.CaseRepository {
	return m
}

type mockHearingRepo struct {
	mock.Mock
}

func (m *mockHearingRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Hearing, error) {
	args := m.Called(ctx, id, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hearing), args.Error(1)
}

func (m *mockHearingRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Hearing, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hearing), args.Error(1)
}

func (m *mockHearingRepo) FindByCase(ctx context.Context, caseNumber string) ([]model.Hearing, error) {
	args := m.Called(ctx, caseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hearing), args.Error(1)
}

func (m *mockHearingRepo) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Hearing, error) {
	args := m.Called(ctx, lawyerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hearing), args.Error(1)
}

func (m *mockHearingRepo) FindPDF(ctx context.Context, id, lawyerID int64) ([]byte, error) {
	args := m.Called(ctx, id, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockHearingRepo) Create(ctx context.Context, params model.CreateHearingParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHearingRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHearingRepo) WithTx(tx *sqlx.Tx) repository.HearingRepository {
	return m
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}
