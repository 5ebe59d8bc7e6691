package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/backend/internal/model"
)

// hearingColumns deliberately excludes the PDF blob; listings never pull it.
const hearingColumns = `
	SELECT h.hearing_id, h.case_number, h.hearing_name, h.created_at, h.updated_at,
	       c.case_title, cl.name AS client_name
	FROM case_hearings h
	JOIN cases c ON h.case_number = c.case_number
	JOIN clients cl ON c.client_id = cl.client_id
`

type HearingRepository interface {
	FindByID(ctx context.Context, id, lawyerID int64) (*model.Hearing, error)
	FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Hearing, error)
	FindByCase(ctx context.Context, caseNumber string) ([]model.Hearing, error)
	SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Hearing, error)
	FindPDF(ctx context.Context, id, lawyerID int64) ([]byte, error)
	Create(ctx context.Context, params model.CreateHearingParams) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	WithTx(tx *sqlx.Tx) HearingRepository
}

type hearingRepo struct {
	db sqlxDB
}

func NewHearingRepository(db *sqlx.DB) HearingRepository {
	return &hearingRepo{db: db}
}

func (r *hearingRepo) WithTx(tx *sqlx.Tx) HearingRepository {
	return &hearingRepo{db: tx}
}

func (r *hearingRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Hearing, error) {
	var hearing model.Hearing
	err := r.db.GetContext(ctx, &hearing, hearingColumns+`
		WHERE h.hearing_id = $1 AND c.lawyer_id = $2
	`, id, lawyerID)
	return HandleNotFound(&hearing, err)
}

func (r *hearingRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Hearing, error) {
	var hearings []model.Hearing
	err := r.db.SelectContext(ctx, &hearings, hearingColumns+`
		WHERE c.lawyer_id = $1
		ORDER BY h.created_at DESC
	`, lawyerID)
	if err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepo) FindByCase(ctx context.Context, caseNumber string) ([]model.Hearing, error) {
	var hearings []model.Hearing
	err := r.db.SelectContext(ctx, &hearings, hearingColumns+`
		WHERE h.case_number = $1
		ORDER BY h.created_at DESC
	`, caseNumber)
	if err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepo) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Hearing, error) {
	var hearings []model.Hearing
	err := r.db.SelectContext(ctx, &hearings, hearingColumns+`
		WHERE c.lawyer_id = $1 AND h.hearing_name ILIKE '%' || $2 || '%'
		ORDER BY h.created_at DESC
	`, lawyerID, name)
	if err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepo) FindPDF(ctx context.Context, id, lawyerID int64) ([]byte, error) {
	var pdf []byte
	err := r.db.GetContext(ctx, &pdf, `
		SELECT h.hearing_pdf
		FROM case_hearings h
		JOIN cases c ON h.case_number = c.case_number
		WHERE h.hearing_id = $1 AND c.lawyer_id = $2
	`, id, lawyerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

func (r *hearingRepo) Create(ctx context.Context, params model.CreateHearingParams) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO case_hearings (case_number, hearing_name, hearing_pdf)
		VALUES ($1, $2, $3)
		RETURNING hearing_id
	`, params.CaseNumber, params.HearingName, params.PDF)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *hearingRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM case_hearings WHERE hearing_id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
