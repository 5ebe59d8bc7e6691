package service

import (
	"context"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
)

// ClientService handles the lawyer's client roster. Every operation is scoped
// to the calling lawyer; a client belonging to someone else reads as absent.
type ClientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) Add(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	if params.Name == "" {
		return nil, apperrors.MissingRequired("Name")
	}

	client, err := s.clientRepo.Create(ctx, params)
	if err != nil {
		if repository.IsUniqueViolation(err, "clients_email_key") {
			return nil, apperrors.DuplicateEntry("Client with this email already exists")
		}
		return nil, apperrors.Database(err)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, lawyerID int64) ([]model.Client, error) {
	clients, err := s.clientRepo.FindByLawyer(ctx, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id, lawyerID int64) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Client, error) {
	if name == "" {
		return nil, apperrors.MissingRequired("Name")
	}
	clients, err := s.clientRepo.SearchByName(ctx, lawyerID, name)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if len(clients) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "No clients found with that name")
	}
	return clients, nil
}

func (s *ClientService) Update(ctx context.Context, id, lawyerID int64, params model.UpdateClientParams) (*model.Client, error) {
	if params.Email != nil {
		taken, err := s.clientRepo.EmailTaken(ctx, *params.Email, id)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		if taken {
			return nil, apperrors.DuplicateEntry("Client with this email already exists")
		}
	}

	client, err := s.clientRepo.Update(ctx, id, lawyerID, params)
	if err != nil {
		if repository.IsUniqueViolation(err, "clients_email_key") {
			return nil, apperrors.DuplicateEntry("Client with this email already exists")
		}
		return nil, apperrors.Database(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id, lawyerID int64) error {
	affected, err := s.clientRepo.Delete(ctx, id, lawyerID)
	if err != nil {
		return apperrors.Database(err)
	}
	if affected == 0 {
		return apperrors.NotFound("Client")
	}
	return nil
}
