package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/backend/internal/model"
)

type OTPRepository interface {
	Create(ctx context.Context, params model.CreateOTPParams) (*model.OTPVerification, error)
	// FindActive returns the most recently created unexpired, unused record
	// matching email and code exactly, or nil when no such record exists.
	FindActive(ctx context.Context, email, code string) (*model.OTPVerification, error)
	MarkUsed(ctx context.Context, id int64) error
	DeleteOthers(ctx context.Context, email string, exceptID int64) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) OTPRepository
}

type otpRepo struct {
	db sqlxDB
}

func NewOTPRepository(db *sqlx.DB) OTPRepository {
	return &otpRepo{db: db}
}

func (r *otpRepo) WithTx(tx *sqlx.Tx) OTPRepository {
	return &otpRepo{db: tx}
}

func (r *otpRepo) Create(ctx context.Context, params model.CreateOTPParams) (*model.OTPVerification, error) {
	var otp model.OTPVerification
	err := r.db.GetContext(ctx, &otp, `
		INSERT INTO otp_verifications (email, otp, expires_at)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.Email, params.OTP, params.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepo) FindActive(ctx context.Context, email, code string) (*model.OTPVerification, error) {
	var otp model.OTPVerification
	err := r.db.GetContext(ctx, &otp, `
		SELECT * FROM otp_verifications
		WHERE email = $1 AND otp = $2 AND is_used = FALSE AND expires_at > now()
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, email, code)
	return HandleNotFound(&otp, err)
}

func (r *otpRepo) MarkUsed(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE otp_verifications SET is_used = TRUE WHERE id = $1
	`, id)
	return err
}

func (r *otpRepo) DeleteOthers(ctx context.Context, email string, exceptID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM otp_verifications WHERE email = $1 AND id != $2
	`, email, exceptID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *otpRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM otp_verifications WHERE expires_at < now()
	`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
