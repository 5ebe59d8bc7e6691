package model

import (
	"time"
)

// Lawyer is an account record. The password column holds a bcrypt digest and
// is never serialized.
type Lawyer struct {
	ID         int64      `db:"lawyer_id" json:"lawyer_id"`
	Name       string     `db:"name" json:"name"`
	Gender     *string    `db:"gender" json:"gender,omitempty"`
	Email      string     `db:"email" json:"email"`
	AdvocateNo *string    `db:"advocate_no" json:"advocate_no,omitempty"`
	Password   string     `db:"password" json:"-"`
	MobileNo   *string    `db:"mobile_no" json:"mobile_no,omitempty"`
	DOB        *time.Time `db:"dob" json:"dob,omitempty"`
	Address    *string    `db:"address" json:"address,omitempty"`
	City       *string    `db:"city" json:"city,omitempty"`
	State      *string    `db:"state" json:"state,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateLawyerParams struct {
	Name       string
	Gender     *string
	Email      string
	AdvocateNo *string
	Password   string
	MobileNo   *string
	DOB        *time.Time
	Address    *string
	City       *string
	State      *string
}

type UpdateLawyerParams struct {
	Name     *string
	Gender   *string
	Email    *string
	MobileNo *string
	DOB      *time.Time
	Address  *string
	City     *string
	State    *string
}
