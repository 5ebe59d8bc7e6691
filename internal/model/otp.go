package model

import "time"

// OTPVerification is a single-use password-reset code. Several rows may be
// outstanding for one email; verification picks the newest live match.
type OTPVerification struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	OTP       string    `db:"otp" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsUsed    bool      `db:"is_used" json:"is_used"`
}

type CreateOTPParams struct {
	Email     string
	OTP       string
	ExpiresAt time.Time
}
