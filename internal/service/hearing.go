package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/config"
	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/mail"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/repository"
	"github.com/nyayasetu/backend/internal/util"
)

// HearingService handles hearing records and their PDF blobs. Ownership flows
// through the parent case: a hearing is visible only to the lawyer who owns
// the case it is attached to.
type HearingService struct {
	hearingRepo repository.HearingRepository
	caseRepo    repository.CaseRepository
	clientRepo  repository.ClientRepository
	lawyerRepo  repository.LawyerRepository
	mailer      mail.Sender
	rag         *RAGService
}

func NewHearingService(
	hearingRepo repository.HearingRepository,
	caseRepo repository.CaseRepository,
	clientRepo repository.ClientRepository,
	lawyerRepo repository.LawyerRepository,
	mailer mail.Sender,
	rag *RAGService,
) *HearingService {
	return &HearingService{
		hearingRepo: hearingRepo,
		caseRepo:    caseRepo,
		clientRepo:  clientRepo,
		lawyerRepo:  lawyerRepo,
		mailer:      mailer,
		rag:         rag,
	}
}

// Add stores a hearing with its PDF after confirming the case belongs to the
// lawyer. The retrieval service is notified afterwards so it can index the
// document; that notification is best effort.
func (s *HearingService) Add(ctx context.Context, lawyerID int64, params model.CreateHearingParams) (*model.Hearing, error) {
	if params.CaseNumber == "" || params.HearingName == "" {
		return nil, apperrors.ValidationError("Case Number and hearing name are required")
	}
	if len(params.PDF) == 0 {
		return nil, apperrors.ValidationError("PDF file is required")
	}

	c, err := s.caseRepo.FindByNumber(ctx, params.CaseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.ValidationError("Case not found or does not belong to this lawyer")
	}

	id, err := s.hearingRepo.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	s.rag.NotifyHearingStored(ctx, id, params.CaseNumber, params.HearingName)

	hearing, err := s.hearingRepo.FindByID(ctx, id, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return hearing, nil
}

func (s *HearingService) List(ctx context.Context, lawyerID int64) ([]model.Hearing, error) {
	hearings, err := s.hearingRepo.FindByLawyer(ctx, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return hearings, nil
}

// ListByCase returns the hearings of one case, newest first. The ownership
// check runs on the case, not per hearing.
func (s *HearingService) ListByCase(ctx context.Context, lawyerID int64, caseNumber string) ([]model.Hearing, error) {
	c, err := s.caseRepo.FindByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.ValidationError("Case not found or does not belong to this lawyer")
	}

	hearings, err := s.hearingRepo.FindByCase(ctx, caseNumber)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return hearings, nil
}

func (s *HearingService) SearchByName(ctx context.Context, lawyerID int64, name string) ([]model.Hearing, error) {
	if name == "" {
		return nil, apperrors.MissingRequired("Hearing name")
	}
	hearings, err := s.hearingRepo.SearchByName(ctx, lawyerID, name)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if len(hearings) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "No hearings found with that name")
	}
	return hearings, nil
}

func (s *HearingService) Get(ctx context.Context, id, lawyerID int64) (*model.Hearing, error) {
	hearing, err := s.hearingRepo.FindByID(ctx, id, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if hearing == nil {
		return nil, apperrors.NotFound("Hearing")
	}
	return hearing, nil
}

// PDF returns the raw document bytes for streaming.
func (s *HearingService) PDF(ctx context.Context, id, lawyerID int64) ([]byte, error) {
	pdf, err := s.hearingRepo.FindPDF(ctx, id, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if pdf == nil {
		return nil, apperrors.NotFound("PDF")
	}
	return pdf, nil
}

func (s *HearingService) Delete(ctx context.Context, id, lawyerID int64) error {
	hearing, err := s.hearingRepo.FindByID(ctx, id, lawyerID)
	if err != nil {
		return apperrors.Database(err)
	}
	if hearing == nil {
		return apperrors.NotFound("Hearing")
	}

	affected, err := s.hearingRepo.Delete(ctx, hearing.ID)
	if err != nil {
		return apperrors.Database(err)
	}
	if affected == 0 {
		return apperrors.Internal("Failed to delete hearing")
	}
	return nil
}

// ClientEmailResult carries the recipient details echoed back after a
// successful case-update mail.
type ClientEmailResult struct {
	ClientName  string
	ClientEmail string
	CaseNumber  string
	CaseTitle   string
	PointsSent  int
}

// SendClientEmail mails a bullet-point case update to the client behind a
// case. The client's address comes from the roster row, never the request.
func (s *HearingService) SendClientEmail(ctx context.Context, lawyerID int64, caseNumber string, points []string) (*ClientEmailResult, error) {
	if caseNumber == "" || len(points) == 0 {
		return nil, apperrors.ValidationError("Case number and points array are required")
	}

	c, err := s.caseRepo.FindByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "Case not found or does not belong to this lawyer")
	}

	client, err := s.clientRepo.FindByID(ctx, c.ClientID, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("Client")
	}
	if client.Email == nil || *client.Email == "" {
		return nil, apperrors.ValidationError("Client email not found for this case")
	}

	lawyer, err := s.lawyerRepo.FindByID(ctx, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if lawyer == nil {
		return nil, apperrors.NotFound("Lawyer")
	}

	mobile := ""
	if lawyer.MobileNo != nil {
		mobile = *lawyer.MobileNo
	}
	body := mail.CaseUpdateBody(mail.CaseUpdateData{
		ClientName:   client.Name,
		CaseNumber:   c.CaseNumber,
		CaseTitle:    c.CaseTitle,
		Points:       points,
		LawyerName:   lawyer.Name,
		LawyerEmail:  lawyer.Email,
		LawyerMobile: mobile,
	})

	mailCtx, cancel := context.WithTimeout(ctx, config.MailSendTimeout)
	defer cancel()
	if err := s.mailer.Send(mailCtx, *client.Email, mail.CaseUpdateSubject(c.CaseNumber), body); err != nil {
		return nil, apperrors.Delivery(err)
	}

	log.Info().
		Str("caseNumber", c.CaseNumber).
		Str("clientEmail", util.MaskEmail(*client.Email)).
		Int("points", len(points)).
		Msg("case update mailed to client")

	return &ClientEmailResult{
		ClientName:  client.Name,
		ClientEmail: *client.Email,
		CaseNumber:  c.CaseNumber,
		CaseTitle:   c.CaseTitle,
		PointsSent:  len(points),
	}, nil
}
