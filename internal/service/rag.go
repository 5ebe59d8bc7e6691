package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/config"
	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/repository"
)

// RAGService proxies chat questions to the external retrieval service. The
// upstream response body is passed through verbatim; only case ownership and
// timeouts are enforced here.
type RAGService struct {
	caseRepo repository.CaseRepository
	baseURL  string
	client   *http.Client
}

func NewRAGService(caseRepo repository.CaseRepository, baseURL string) *RAGService {
	return &RAGService{
		caseRepo: caseRepo,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: config.RAGRequestTimeout},
	}
}

type ragQueryPayload struct {
	Question   string      `json:"question"`
	CaseNumber string      `json:"case_number"`
	LawyerID   int64       `json:"lawyer_id"`
	Metadata   ragMetadata `json:"metadata"`
}

type ragMetadata struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	RequestID string `json:"request_id"`
}

// Query forwards a question about one of the lawyer's cases. bearer is the
// caller's own session token, passed through so the upstream can attribute
// the request.
func (s *RAGService) Query(ctx context.Context, lawyerID int64, caseNumber, question, bearer string) (json.RawMessage, error) {
	if question == "" {
		return nil, apperrors.MissingRequired("Question")
	}
	if caseNumber == "" {
		return nil, apperrors.MissingRequired("Case number")
	}

	c, err := s.caseRepo.FindByNumber(ctx, caseNumber, lawyerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if c == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "Case not found or does not belong to this lawyer")
	}

	requestID := uuid.NewString()
	body, err := json.Marshal(ragQueryPayload{
		Question:   question,
		CaseNumber: caseNumber,
		LawyerID:   lawyerID,
		Metadata: ragMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Source:    "law_firm_backend",
			RequestID: requestID,
		},
	})
	if err != nil {
		return nil, apperrors.Internal("Error processing RAG request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/nyayasetu/rag/chat", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Internal("Error processing RAG request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("X-Case-Number", caseNumber)
	req.Header.Set("X-Lawyer-ID", fmt.Sprintf("%d", lawyerID))
	req.Header.Set("X-Source", "law-firm-backend")

	log.Debug().
		Str("requestId", requestID).
		Str("caseNumber", caseNumber).
		Msg("forwarding RAG query")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.External("RAG service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.External("RAG service", fmt.Errorf("RAG API returned %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.External("RAG service", err)
	}
	if !json.Valid(raw) {
		return nil, apperrors.External("RAG service", fmt.Errorf("invalid JSON from upstream"))
	}
	return json.RawMessage(raw), nil
}

// NotifyHearingStored tells the retrieval service a hearing document landed so
// it can index it. Best effort: failures are logged, never surfaced, since the
// hearing row is already committed.
func (s *RAGService) NotifyHearingStored(ctx context.Context, hearingID int64, caseNumber, hearingName string) {
	body, err := json.Marshal(map[string]interface{}{
		"hearing_id":   hearingID,
		"hearing_name": hearingName,
		"case_number":  caseNumber,
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/nyayasetu/store/hearing", bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("hearing index notification setup failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Case-Number", caseNumber)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Int64("hearingId", hearingID).Msg("hearing index notification failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Int64("hearingId", hearingID).Msg("hearing index notification rejected")
	}
}
