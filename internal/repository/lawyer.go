package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/backend/internal/model"
)

type LawyerRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Lawyer, error)
	FindByEmail(ctx context.Context, email string) (*model.Lawyer, error)
	Create(ctx context.Context, params model.CreateLawyerParams) (*model.Lawyer, error)
	Update(ctx context.Context, id int64, params model.UpdateLawyerParams) (*model.Lawyer, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) LawyerRepository
}

type lawyerRepo struct {
	db sqlxDB
}

// sqlxDB is an interface satisfied by both *sqlx.DB and *sqlx.Tx
type sqlxDB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func NewLawyerRepository(db *sqlx.DB) LawyerRepository {
	return &lawyerRepo{db: db}
}

func (r *lawyerRepo) WithTx(tx *sqlx.Tx) LawyerRepository {
	return &lawyerRepo{db: tx}
}

func (r *lawyerRepo) FindByID(ctx context.Context, id int64) (*model.Lawyer, error) {
	var lawyer model.Lawyer
	err := r.db.GetContext(ctx, &lawyer, `
		SELECT * FROM lawyers WHERE lawyer_id = $1
	`, id)
	return HandleNotFound(&lawyer, err)
}

func (r *lawyerRepo) FindByEmail(ctx context.Context, email string) (*model.Lawyer, error) {
	var lawyer model.Lawyer
	err := r.db.GetContext(ctx, &lawyer, `
		SELECT * FROM lawyers WHERE email = $1
	`, email)
	return HandleNotFound(&lawyer, err)
}

func (r *lawyerRepo) Create(ctx context.Context, params model.CreateLawyerParams) (*model.Lawyer, error) {
	var lawyer model.Lawyer
	err := r.db.GetContext(ctx, &lawyer, `
		INSERT INTO lawyers (name, gender, email, advocate_no, password, mobile_no, dob, address, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *
	`, params.Name, params.Gender, params.Email, params.AdvocateNo, params.Password,
		params.MobileNo, params.DOB, params.Address, params.City, params.State)
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepo) Update(ctx context.Context, id int64, params model.UpdateLawyerParams) (*model.Lawyer, error) {
	var lawyer model.Lawyer
	err := r.db.GetContext(ctx, &lawyer, `
		UPDATE lawyers SET
			name = COALESCE($2, name),
			gender = COALESCE($3, gender),
			email = COALESCE($4, email),
			mobile_no = COALESCE($5, mobile_no),
			dob = COALESCE($6, dob),
			address = COALESCE($7, address),
			city = COALESCE($8, city),
			state = COALESCE($9, state),
			updated_at = $10
		WHERE lawyer_id = $1
		RETURNING *
	`, id, params.Name, params.Gender, params.Email, params.MobileNo,
		params.DOB, params.Address, params.City, params.State, time.Now())
	return HandleNotFound(&lawyer, err)
}

func (r *lawyerRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE lawyers SET password = $2, updated_at = $3 WHERE email = $1
	`, email, passwordHash, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *lawyerRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM lawyers WHERE email = $1 AND lawyer_id != $2
	`, email, excludeID)
	return count > 0, err
}
