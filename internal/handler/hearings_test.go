package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/backend/internal/middleware"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/service"
	"github.com/nyayasetu/backend/internal/token"
)

type hearingFixture struct {
	hearings *mockHearingRepo
	cases    *mockCaseRepo
	clients  *mockClientRepo
	lawyers  *mockLawyerRepo
	mailer   *mockMailer
	issuer   *token.Issuer
	router   http.Handler
}

func newHearingFixture(t *testing.T) *hearingFixture {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(upstream.Close)

	f := &hearingFixture{
		hearings: new(mockHearingRepo),
		cases:    new(mockCaseRepo),
		clients:  new(mockClientRepo),
		lawyers:  new(mockLawyerRepo),
		mailer:   new(mockMailer),
		issuer:   token.NewIssuer(testSecret, time.Hour),
	}

	rag := service.NewRAGService(f.cases, upstream.URL)
	svc := service.NewHearingService(f.hearings, f.cases, f.clients, f.lawyers, f.mailer, rag)
	auth := middleware.NewAuthMiddleware(f.issuer)
	f.router = NewHearingHandler(svc, auth.Handler).Routes()
	return f
}

func (f *hearingFixture) bearer(t *testing.T, lawyerID int64) string {
	t.Helper()
	tok, err := f.issuer.Issue(lawyerID, "asha@example.com")
	require.NoError(t, err)
	return "Bearer " + tok
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHearingUpload(t *testing.T) {
	ownedCase := &model.Case{ID: 1, CaseNumber: "CR-2025-0042", LawyerID: 3, ClientID: 5}
	pdf := []byte("%PDF-1.4\nminimal test document")

	t.Run("accepts pdf upload", func(t *testing.T) {
		f := newHearingFixture(t)
		f.cases.On("FindByNumber", mock.Anything, "CR-2025-0042", int64(3)).Return(ownedCase, nil)
		f.hearings.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateHearingParams) bool {
			return p.CaseNumber == "CR-2025-0042" && bytes.Equal(p.PDF, pdf)
		})).Return(int64(11), nil)
		f.hearings.On("FindByID", mock.Anything, int64(11), int64(3)).
			Return(&model.Hearing{ID: 11, CaseNumber: "CR-2025-0042", HearingName: "First Hearing"}, nil)

		body, contentType := multipartBody(t, map[string]string{
			"case_number": "CR-2025-0042", "hearing_name": "First Hearing",
		}, "hearing_pdf", "notes.pdf", pdf)

		req := httptest.NewRequest(http.MethodPost, "/add", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", f.bearer(t, 3))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, "Hearing added successfully", resp["message"])
		hearing := resp["hearing"].(map[string]any)
		assert.Equal(t, float64(11), hearing["hearing_id"])
	})

	t.Run("rejects non-pdf content", func(t *testing.T) {
		f := newHearingFixture(t)

		body, contentType := multipartBody(t, map[string]string{
			"case_number": "CR-2025-0042", "hearing_name": "First Hearing",
		}, "hearing_pdf", "notes.pdf", []byte("<html>not a pdf</html>"))

		req := httptest.NewRequest(http.MethodPost, "/add", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", f.bearer(t, 3))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Only PDF files are allowed", decodeBody(t, rec)["message"])
		f.hearings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		f := newHearingFixture(t)

		body, contentType := multipartBody(t, map[string]string{
			"case_number": "CR-2025-0042", "hearing_name": "First Hearing",
		}, "", "", nil)

		req := httptest.NewRequest(http.MethodPost, "/add", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", f.bearer(t, 3))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PDF file is required", decodeBody(t, rec)["message"])
	})

	t.Run("rejects unauthenticated upload", func(t *testing.T) {
		f := newHearingFixture(t)

		body, contentType := multipartBody(t, map[string]string{
			"case_number": "CR-2025-0042", "hearing_name": "First Hearing",
		}, "hearing_pdf", "notes.pdf", pdf)

		req := httptest.NewRequest(http.MethodPost, "/add", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHearingPDFDownload(t *testing.T) {
	pdf := []byte("%PDF-1.4\ncontent")

	t.Run("streams stored pdf inline", func(t *testing.T) {
		f := newHearingFixture(t)
		f.hearings.On("FindPDF", mock.Anything, int64(11), int64(3)).Return(pdf, nil)

		req := httptest.NewRequest(http.MethodGet, "/pdf/11", nil)
		req.Header.Set("Authorization", f.bearer(t, 3))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "hearing_11.pdf")

		got, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, pdf, got)
	})

	t.Run("missing pdf is 404", func(t *testing.T) {
		f := newHearingFixture(t)
		f.hearings.On("FindPDF", mock.Anything, int64(12), int64(3)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/pdf/12", nil)
		req.Header.Set("Authorization", f.bearer(t, 3))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("foreign lawyer cannot fetch the pdf", func(t *testing.T) {
		f := newHearingFixture(t)
		f.hearings.On("FindPDF", mock.Anything, int64(11), int64(99)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/pdf/11", nil)
		req.Header.Set("Authorization", f.bearer(t, 99))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
