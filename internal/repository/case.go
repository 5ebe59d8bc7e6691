package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/backend/internal/model"
)

// caseColumns joins the owning client's name into every case row, matching
// what the API returns.
const caseColumns = `
	SELECT c.*, cl.name AS client_name
	FROM cases c
	JOIN clients cl ON c.client_id = cl.client_id
`

type CaseRepository interface {
	FindByID(ctx context.Context, id, lawyerID int64) (*model.Case, error)
	FindByNumber(ctx context.Context, caseNumber string, lawyerID int64) (*model.Case, error)
	FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Case, error)
	SearchByTitle(ctx context.Context, lawyerID int64, title string) ([]model.Case, error)
	SearchByCourt(ctx context.Context, lawyerID int64, court string) ([]model.Case, error)
	SearchByType(ctx context.Context, lawyerID int64, caseType string) ([]model.Case, error)
	SearchByClientName(ctx context.Context, lawyerID int64, clientName string) ([]model.Case, error)
	Create(ctx context.Context, params model.CreateCaseParams) (*model.Case, error)
	UpdateByNumber(ctx context.Context, caseNumber string, lawyerID int64, params model.UpdateCaseParams) (*model.Case, error)
	DeleteByNumber(ctx context.Context, caseNumber string, lawyerID int64) (int64, error)
	WithTx(tx *sqlx.Tx) CaseRepository
}

type caseRepo struct {
	db sqlxDB
}

func NewCaseRepository(db *sqlx.DB) CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) WithTx(tx *sqlx.Tx) CaseRepository {
	return &caseRepo{db: tx}
}

func (r *caseRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Case, error) {
	var c model.Case
	err := r.db.GetContext(ctx, &c, caseColumns+`
		WHERE c.case_id = $1 AND c.lawyer_id = $2
	`, id, lawyerID)
	return HandleNotFound(&c, err)
}

func (r *caseRepo) FindByNumber(ctx context.Context, caseNumber string, lawyerID int64) (*model.Case, error) {
	var c model.Case
	err := r.db.GetContext(ctx, &c, caseColumns+`
		WHERE c.case_number = $1 AND c.lawyer_id = $2
	`, caseNumber, lawyerID)
	return HandleNotFound(&c, err)
}

func (r *caseRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Case, error) {
	var cases []model.Case
	err := r.db.SelectContext(ctx, &cases, caseColumns+`
		WHERE c.lawyer_id = $1
		ORDER BY c.created_at DESC
	`, lawyerID)
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) SearchByTitle(ctx context.Context, lawyerID int64, title string) ([]model.Case, error) {
	return r.search(ctx, lawyerID, "c.case_title", title)
}

func (r *caseRepo) SearchByCourt(ctx context.Context, lawyerID int64, court string) ([]model.Case, error) {
	return r.search(ctx, lawyerID, "c.court_name", court)
}

func (r *caseRepo) SearchByType(ctx context.Context, lawyerID int64, caseType string) ([]model.Case, error) {
	return r.search(ctx, lawyerID, "c.case_type", caseType)
}

func (r *caseRepo) SearchByClientName(ctx context.Context, lawyerID int64, clientName string) ([]model.Case, error) {
	return r.search(ctx, lawyerID, "cl.name", clientName)
}

// search runs a partial-match lookup on one of the fixed searchable columns.
// column is always one of the constants above, never user input.
func (r *caseRepo) search(ctx context.Context, lawyerID int64, column, term string) ([]model.Case, error) {
	var cases []model.Case
	err := r.db.SelectContext(ctx, &cases, caseColumns+`
		WHERE c.lawyer_id = $1 AND `+column+` ILIKE '%' || $2 || '%'
		ORDER BY c.created_at DESC
	`, lawyerID, term)
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) Create(ctx context.Context, params model.CreateCaseParams) (*model.Case, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO cases (lawyer_id, client_id, case_number, case_title, court_name, case_type, filing_date, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING case_id
	`, params.LawyerID, params.ClientID, params.CaseNumber, params.CaseTitle,
		params.CourtName, params.CaseType, params.FilingDate, params.Status, params.Description)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id, params.LawyerID)
}

func (r *caseRepo) UpdateByNumber(ctx context.Context, caseNumber string, lawyerID int64, params model.UpdateCaseParams) (*model.Case, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cases SET
			client_id = COALESCE($3, client_id),
			case_title = COALESCE($4, case_title),
			court_name = COALESCE($5, court_name),
			case_type = COALESCE($6, case_type),
			filing_date = COALESCE($7, filing_date),
			status = COALESCE($8, status),
			description = COALESCE($9, description),
			updated_at = $10
		WHERE case_number = $1 AND lawyer_id = $2
	`, caseNumber, lawyerID, params.ClientID, params.CaseTitle, params.CourtName,
		params.CaseType, params.FilingDate, params.Status, params.Description, time.Now())
	if err != nil {
		return nil, err
	}
	return r.FindByNumber(ctx, caseNumber, lawyerID)
}

func (r *caseRepo) DeleteByNumber(ctx context.Context, caseNumber string, lawyerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cases WHERE case_number = $1 AND lawyer_id = $2
	`, caseNumber, lawyerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
