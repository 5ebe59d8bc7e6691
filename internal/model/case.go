package model

import "time"

// CaseStatus values accepted on create and update.
var ValidCaseStatuses = []string{
	"Pending",
	"Ongoing",
	"Reserved for Judgment",
	"Disposed",
	"Appeal Filed",
	"Closed",
}

func IsValidCaseStatus(status string) bool {
	for _, s := range ValidCaseStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Case always carries the joined client name when read through the
// repository's find queries.
type Case struct {
	ID          int64     `db:"case_id" json:"case_id"`
	LawyerID    int64     `db:"lawyer_id" json:"lawyer_id"`
	ClientID    int64     `db:"client_id" json:"client_id"`
	CaseNumber  string    `db:"case_number" json:"case_number"`
	CaseTitle   string    `db:"case_title" json:"case_title"`
	CourtName   string    `db:"court_name" json:"court_name"`
	CaseType    string    `db:"case_type" json:"case_type"`
	FilingDate  time.Time `db:"filing_date" json:"filing_date"`
	Status      string    `db:"status" json:"status"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	ClientName  string    `db:"client_name" json:"client_name,omitempty"`
}

type CreateCaseParams struct {
	LawyerID    int64
	ClientID    int64
	CaseNumber  string
	CaseTitle   string
	CourtName   string
	CaseType    string
	FilingDate  time.Time
	Status      string
	Description *string
}

type UpdateCaseParams struct {
	ClientID    *int64
	CaseTitle   *string
	CourtName   *string
	CaseType    *string
	FilingDate  *time.Time
	Status      *string
	Description *string
}
