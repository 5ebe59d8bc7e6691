package service

import (
	"context"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
)

// LawyerService serves the authenticated lawyer's own profile.
type LawyerService struct {
	lawyerRepo repository.LawyerRepository
}

func NewLawyerService(lawyerRepo repository.LawyerRepository) *LawyerService {
	return &LawyerService{lawyerRepo: lawyerRepo}
}

func (s *LawyerService) GetProfile(ctx context.Context, id int64) (*model.Lawyer, error) {
	lawyer, err := s.lawyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if lawyer == nil {
		return nil, apperrors.NotFound("Lawyer")
	}
	return lawyer, nil
}

func (s *LawyerService) UpdateProfile(ctx context.Context, id int64, params model.UpdateLawyerParams) (*model.Lawyer, error) {
	if params.Email != nil {
		taken, err := s.lawyerRepo.EmailTaken(ctx, *params.Email, id)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		if taken {
			return nil, apperrors.DuplicateEntry("Email already exists")
		}
	}

	lawyer, err := s.lawyerRepo.Update(ctx, id, params)
	if err != nil {
		if repository.IsUniqueViolation(err, "lawyers_email_key") {
			return nil, apperrors.DuplicateEntry("Email already exists")
		}
		return nil, apperrors.Database(err)
	}
	if lawyer == nil {
		return nil, apperrors.NotFound("Lawyer")
	}
	return lawyer, nil
}
