package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
)

// CaseService handles case records. Cases reference a client of the same
// lawyer; both the reference and the unique case number are checked before
// the insert so callers get a clean message instead of a constraint error.
type CaseService struct {
	caseRepo   repository.CaseRepository
	clientRepo repository.ClientRepository
}

func NewCaseService(caseRepo repository.CaseRepository, clientRepo repository.ClientRepository) *CaseService {
	return &CaseService{caseRepo: caseRepo, clientRepo: clientRepo}
}

func (s *CaseService) Add(ctx context.Context, params model.CreateCaseParams) (*model.Case, error) {
	switch {
	case params.ClientID == 0:
		return nil, apperrors.MissingRequired("Client")
	case params.CaseNumber == "":
		return nil, apperrors.MissingRequired("Case number")
	case params.CaseTitle == "":
		return nil, apperrors.MissingRequired("Case title")
	case params.CourtName == "":
		return nil, apperrors.MissingRequired("Court name")
	case params.CaseType == "":
		return nil, apperrors.MissingRequired("Case type")
	case params.FilingDate.IsZero():
		return nil, apperrors.MissingRequired("Filing date")
	}

	if params.Status == "" {
		params.Status = "Pending"
	}
	if !model.IsValidCaseStatus(params.Status) {
		return nil, apperrors.ValidationError(invalidStatusMessage())
	}

	client, err := s.clientRepo.FindByID(ctx, params.ClientID, params.LawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if client == nil {
		return nil, apperrors.ValidationError("Client not found or does not belong to this lawyer")
	}

	c, err := s.caseRepo.Create(ctx, params)
	if err != nil {
		if repository.IsUniqueViolation(err, "cases_case_number_key") {
			return nil, apperrors.DuplicateEntry("Case with this case number already exists")
		}
		return nil, apperrors.Database(err)
	}
	return c, nil
}

func (s *CaseService) GetByID(ctx context.Context, id, lawyerID int64) (*model.Case, error) {
	c, err := s.caseRepo.FindByID(ctx, id, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.NotFound("Case")
	}
	return c, nil
}

func (s *CaseService) List(ctx context.Context, lawyerID int64) ([]model.Case, error) {
	cases, err := s.caseRepo.FindByLawyer(ctx, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return cases, nil
}

func (s *CaseService) GetByNumber(ctx context.Context, caseNumber string, lawyerID int64) (*model.Case, error) {
	if caseNumber == "" {
		return nil, apperrors.MissingRequired("Case number")
	}
	c, err := s.caseRepo.FindByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "Case not found with this case number")
	}
	return c, nil
}

func (s *CaseService) SearchByTitle(ctx context.Context, lawyerID int64, title string) ([]model.Case, error) {
	cases, err := s.caseRepo.SearchByTitle(ctx, lawyerID, title)
	return searchResult(cases, err, "No cases found with that title")
}

func (s *CaseService) SearchByCourt(ctx context.Context, lawyerID int64, court string) ([]model.Case, error) {
	cases, err := s.caseRepo.SearchByCourt(ctx, lawyerID, court)
	return searchResult(cases, err, "No cases found in that court")
}

func (s *CaseService) SearchByType(ctx context.Context, lawyerID int64, caseType string) ([]model.Case, error) {
	cases, err := s.caseRepo.SearchByType(ctx, lawyerID, caseType)
	return searchResult(cases, err, "No cases found of that type")
}

func (s *CaseService) SearchByClientName(ctx context.Context, lawyerID int64, clientName string) ([]model.Case, error) {
	cases, err := s.caseRepo.SearchByClientName(ctx, lawyerID, clientName)
	return searchResult(cases, err, "No cases found for that client")
}

func searchResult(cases []model.Case, err error, emptyMessage string) ([]model.Case, error) {
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if len(cases) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, emptyMessage)
	}
	return cases, nil
}

func (s *CaseService) UpdateByNumber(ctx context.Context, caseNumber string, lawyerID int64, params model.UpdateCaseParams) (*model.Case, error) {
	existing, err := s.caseRepo.FindByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("Case")
	}

	if params.Status != nil && !model.IsValidCaseStatus(*params.Status) {
		return nil, apperrors.ValidationError(invalidStatusMessage())
	}

	if params.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *params.ClientID, lawyerID)
		if err != nil {
			return nil, apperrors.Database(err)
		}
		if client == nil {
			return nil, apperrors.ValidationError("Client not found or does not belong to this lawyer")
		}
	}

	c, err := s.caseRepo.UpdateByNumber(ctx, caseNumber, lawyerID, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.NotFound("Case")
	}
	return c, nil
}

func (s *CaseService) DeleteByNumber(ctx context.Context, caseNumber string, lawyerID int64) error {
	affected, err := s.caseRepo.DeleteByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return apperrors.Database(err)
	}
	if affected == 0 {
		return apperrors.NotFound("Case")
	}
	return nil
}

func invalidStatusMessage() string {
	return fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(model.ValidCaseStatuses, ", "))
}
