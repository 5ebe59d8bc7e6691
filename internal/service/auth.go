package service

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/audit"
	"github.com/nyayasetu/backend/internal/config"
	"github.com/nyayasetu/backend/internal/database"
	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/mail"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
	"github.com/nyayasetu/backend/internal/token"
	"github.com/nyayasetu/backend/internal/util"
)

// TxRunner executes a function inside a database transaction.
// *database.DB satisfies it; tests substitute a pass-through.
type TxRunner interface {
	WithTx(ctx context.Context, fn database.TxFunc) error
}

var _ TxRunner = (*database.DB)(nil)

// AuthService orchestrates signup, login and the OTP-based password reset.
// Each request is stateless; all flow state lives in the lawyers and
// otp_verifications tables.
type AuthService struct {
	db         TxRunner
	lawyerRepo repository.LawyerRepository
	otpRepo    repository.OTPRepository
	mailer     mail.Sender
	tokens     *token.Issuer
	otpTTL     time.Duration
}

func NewAuthService(
	db TxRunner,
	lawyerRepo repository.LawyerRepository,
	otpRepo repository.OTPRepository,
	mailer mail.Sender,
	tokens *token.Issuer,
	otpTTL time.Duration,
) *AuthService {
	return &AuthService{
		db:         db,
		lawyerRepo: lawyerRepo,
		otpRepo:    otpRepo,
		mailer:     mailer,
		tokens:     tokens,
		otpTTL:     otpTTL,
	}
}

// Signup hashes the password and inserts the account. Duplicate email and
// advocate number both surface as DUPLICATE_ENTRY with distinct messages.
func (s *AuthService) Signup(ctx context.Context, params model.CreateLawyerParams) (*model.Lawyer, error) {
	if params.Name == "" {
		return nil, apperrors.MissingRequired("Name")
	}
	if params.Email == "" {
		return nil, apperrors.MissingRequired("Email")
	}
	if params.Password == "" {
		return nil, apperrors.MissingRequired("Password")
	}

	hash, err := util.HashPassword(params.Password)
	if err != nil {
		return nil, apperrors.Internal("Unable to create lawyer").WithCause(err)
	}
	params.Password = hash

	lawyer, err := s.lawyerRepo.Create(ctx, params)
	if err != nil {
		switch {
		case repository.IsUniqueViolation(err, "lawyers_email_key"):
			return nil, apperrors.DuplicateEntry("Email already exists")
		case repository.IsUniqueViolation(err, "lawyers_advocate_no_key"):
			return nil, apperrors.DuplicateEntry("Advocate number already exists")
		case repository.IsUniqueViolation(err, ""):
			return nil, apperrors.DuplicateEntry("Duplicate entry found")
		}
		return nil, apperrors.Database(err)
	}

	audit.Log(ctx, audit.Event{Type: audit.EventAccountCreate, LawyerID: lawyer.ID})
	log.Info().Int64("lawyerId", lawyer.ID).Msg("lawyer account created")
	return lawyer, nil
}

// Login verifies credentials and mints a session token.
//
// An unknown email and a wrong password deliberately return distinct
// messages; the existing web client surfaces both. This is an account
// enumeration side-channel carried over from the deployed behavior.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Lawyer, error) {
	lawyer, err := s.lawyerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.Database(err)
	}
	if lawyer == nil {
		audit.Log(ctx, audit.Event{Type: audit.EventLoginFailure, Email: util.MaskEmail(email)})
		return "", nil, apperrors.Unauthorized("Email not found, try again!")
	}

	if !util.CheckPasswordHash(password, lawyer.Password) {
		audit.Log(ctx, audit.Event{Type: audit.EventLoginFailure, LawyerID: lawyer.ID})
		return "", nil, apperrors.Unauthorized("Email and Password do not match, try again!")
	}

	tok, err := s.tokens.Issue(lawyer.ID, lawyer.Email)
	if err != nil {
		return "", nil, apperrors.Internal("Error logging in lawyer").WithCause(err)
	}

	audit.Log(ctx, audit.Event{Type: audit.EventLoginSuccess, LawyerID: lawyer.ID})
	return tok, lawyer, nil
}

// ForgotPassword issues a fresh OTP and mails it. Outstanding codes for the
// email stay valid; the newest match wins at verification time.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	lawyer, err := s.lawyerRepo.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.Database(err)
	}
	if lawyer == nil {
		return apperrors.Unauthorized("Email not found, try again!")
	}

	code, err := util.GenerateOTP()
	if err != nil {
		return apperrors.Internal("Error sending mail to change password").WithCause(err)
	}

	otp, err := s.otpRepo.Create(ctx, model.CreateOTPParams{
		Email:     email,
		OTP:       code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	})
	if err != nil {
		return apperrors.Database(err)
	}

	mailCtx, cancel := context.WithTimeout(ctx, config.MailSendTimeout)
	defer cancel()
	if err := s.mailer.Send(mailCtx, email, mail.OTPSubject, mail.OTPBody(code, s.otpTTL)); err != nil {
		return apperrors.Delivery(err)
	}

	audit.Log(ctx, audit.Event{Type: audit.EventOTPIssued, LawyerID: lawyer.ID})
	log.Info().
		Int64("otpId", otp.ID).
		Str("email", util.MaskEmail(email)).
		Time("expiresAt", otp.ExpiresAt).
		Msg("password reset OTP issued")

	return nil
}

// ResetPassword verifies the OTP and swaps the password digest. The digest
// update, the consume of the matched code and the purge of every other
// outstanding code for the email commit in a single transaction, so a
// failure part-way never leaves a spent code reusable.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return apperrors.ValidationError("Email, OTP, and new password are required")
	}

	otp, err := s.otpRepo.FindActive(ctx, email, code)
	if err != nil {
		return apperrors.Database(err)
	}
	if otp == nil {
		// Wrong, expired and never-issued codes are indistinguishable here.
		return apperrors.InvalidOTP()
	}

	lawyer, err := s.lawyerRepo.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.Database(err)
	}
	if lawyer == nil {
		return apperrors.NotFound("User")
	}

	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return apperrors.Internal("Error resetting password").WithCause(err)
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		lawyers := s.lawyerRepo.WithTx(tx)
		otps := s.otpRepo.WithTx(tx)

		affected, err := lawyers.UpdatePassword(ctx, email, hash)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.Internal("Failed to update password")
		}
		if err := otps.MarkUsed(ctx, otp.ID); err != nil {
			return err
		}
		_, err = otps.DeleteOthers(ctx, email, otp.ID)
		return err
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.Database(err)
	}

	audit.Log(ctx, audit.Event{Type: audit.EventPasswordReset, LawyerID: lawyer.ID})
	return nil
}
