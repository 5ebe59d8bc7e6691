package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nyayasetu/backend/internal/model"
)

// ClientRepository scopes every read and write to the owning lawyer.
type ClientRepository interface {
	FindByID(ctx context.Context, id, lawyerID int64) (*model.Client, error)
	FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Client, error)
	SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Client, error)
	Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error)
	Update(ctx context.Context, id, lawyerID int64, params model.UpdateClientParams) (*model.Client, error)
	Delete(ctx context.Context, id, lawyerID int64) (int64, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	WithTx(tx *sqlx.Tx) ClientRepository
}

type clientRepo struct {
	db sqlxDB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) WithTx(tx *sqlx.Tx) ClientRepository {
	return &clientRepo{db: tx}
}

func (r *clientRepo) FindByID(ctx context.Context, id, lawyerID int64) (*model.Client, error) {
	var client model.Client
	err := r.db.GetContext(ctx, &client, `
		SELECT * FROM clients WHERE client_id = $1 AND lawyer_id = $2
	`, id, lawyerID)
	return HandleNotFound(&client, err)
}

func (r *clientRepo) FindByLawyer(ctx context.Context, lawyerID int64) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.SelectContext(ctx, &clients, `
		SELECT * FROM clients
		WHERE lawyer_id = $1
		ORDER BY created_at DESC
	`, lawyerID)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.SelectContext(ctx, &clients, `
		SELECT * FROM clients
		WHERE lawyer_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`, lawyerID, name)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	var client model.Client
	err := r.db.GetContext(ctx, &client, `
		INSERT INTO clients (lawyer_id, name, gender, email, mobile_no, dob, address, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	`, params.LawyerID, params.Name, params.Gender, params.Email, params.MobileNo,
		params.DOB, params.Address, params.City, params.State)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Update(ctx context.Context, id, lawyerID int64, params model.UpdateClientParams) (*model.Client, error) {
	var client model.Client
	err := r.db.GetContext(ctx, &client, `
		UPDATE clients SET
			name = COALESCE($3, name),
			gender = COALESCE($4, gender),
			email = COALESCE($5, email),
			mobile_no = COALESCE($6, mobile_no),
			dob = COALESCE($7, dob),
			address = COALESCE($8, address),
			city = COALESCE($9, city),
			state = COALESCE($10, state),
			updated_at = $11
		WHERE client_id = $1 AND lawyer_id = $2
		RETURNING *
	`, id, lawyerID, params.Name, params.Gender, params.Email, params.MobileNo,
		params.DOB, params.Address, params.City, params.State, time.Now())
	return HandleNotFound(&client, err)
}

func (r *clientRepo) Delete(ctx context.Context, id, lawyerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM clients WHERE client_id = $1 AND lawyer_id = $2
	`, id, lawyerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *clientRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM clients WHERE email = $1 AND client_id != $2
	`, email, excludeID)
	return count > 0, err
}
