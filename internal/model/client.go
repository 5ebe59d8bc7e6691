package model

import "time"

type Client struct {
	ID        int64      `db:"client_id" json:"client_id"`
	LawyerID  int64      `db:"lawyer_id" json:"lawyer_id"`
	Name      string     `db:"name" json:"name"`
	Gender    *string    `db:"gender" json:"gender,omitempty"`
	Email     *string    `db:"email" json:"email,omitempty"`
	MobileNo  *string    `db:"mobile_no" json:"mobile_no,omitempty"`
	DOB       *time.Time `db:"dob" json:"dob,omitempty"`
	Address   *string    `db:"address" json:"address,omitempty"`
	City      *string    `db:"city" json:"city,omitempty"`
	State     *string    `db:"state" json:"state,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateClientParams struct {
	LawyerID int64
	Name     string
	Gender   *string
	Email    *string
	MobileNo *string
	DOB      *time.Time
	Address  *string
	City     *string
	State    *string
}

type UpdateClientParams struct {
	Name     *string
	Gender   *string
	Email    *string
	MobileNo *string
	DOB      *time.Time
	Address  *string
	City     *string
	State    *string
}
