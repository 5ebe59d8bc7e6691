package model

import "time"

// Hearing metadata. PDF bytes are loaded only by the dedicated blob query and
// never serialized into JSON.
type Hearing struct {
	ID          int64     `db:"hearing_id" json:"hearing_id"`
	CaseNumber  string    `db:"case_number" json:"case_number"`
	HearingName string    `db:"hearing_name" json:"hearing_name"`
	PDF         []byte    `db:"hearing_pdf" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	CaseTitle   string    `db:"case_title" json:"case_title,omitempty"`
	ClientName  string    `db:"client_name" json:"client_name,omitempty"`
}

type CreateHearingParams struct {
	CaseNumber  string
	HearingName string
	PDF         []byte
}
