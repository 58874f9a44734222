package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/4supreme/business-application/internal/apperror"
	"github.com/4supreme/business-application/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDocumentService returns canned values so the handler's binding and
// status mapping can be exercised without a database.
type stubDocumentService struct {
	createResp *dto.DocumentResponse
	createErr  error
	postResp   *dto.DocumentResponse
	postErr    error
	getErr     error
}

func (s *stubDocumentService) Create(_ context.Context, _ dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	return s.createResp, s.createErr
}
func (s *stubDocumentService) Get(_ context.Context, _ uint) (*dto.DocumentResponse, error) {
	return nil, s.getErr
}
func (s *stubDocumentService) List(_ context.Context, _ dto.DocumentFilter) (*dto.DocumentListResponse, error) {
	return &dto.DocumentListResponse{}, nil
}
func (s *stubDocumentService) Post(_ context.Context, _ uint) (*dto.DocumentResponse, error) {
	return s.postResp, s.postErr
}
func (s *stubDocumentService) Unpost(_ context.Context, _ uint) (*dto.DocumentResponse, error) {
	return nil, nil
}
func (s *stubDocumentService) Delete(_ context.Context, _ uint) error { return nil }
func (s *stubDocumentService) RecentVendors(_ context.Context) ([]string, error) {
	return []string{}, nil
}
func (s *stubDocumentService) VendorHistory(_ context.Context, _ string, _ int) ([]dto.VendorHistoryRow, error) {
	return nil, nil
}

func newTestRouter(svc *stubDocumentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDocumentsHandler(svc)
	r := gin.New()
	r.POST("/v1/documents", h.Create)
	r.GET("/v1/documents/:id", h.Get)
	r.POST("/v1/documents/:id/post", h.Post)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDocument_InvalidJSON(t *testing.T) {
	r := newTestRouter(&stubDocumentService{})
	w := doRequest(r, "POST", "/v1/documents", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDocument_FieldValidation(t *testing.T) {
	r := newTestRouter(&stubDocumentService{})
	// Missing lines and bad type trip validator tags before the service runs.
	w := doRequest(r, "POST", "/v1/documents", `{"type":"transfer"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "Type")
	assert.Contains(t, body.Fields, "Lines")
}

func TestCreateDocument_Success(t *testing.T) {
	svc := &stubDocumentService{createResp: &dto.DocumentResponse{ID: 1, Type: "purchase", Status: "draft"}}
	r := newTestRouter(svc)

	w := doRequest(r, "POST", "/v1/documents",
		`{"type":"purchase","lines":[{"product_id":1,"qty":"5","price":"16.00"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "draft", resp.Status)
}

func TestGetDocument_NotFoundMapsTo404(t *testing.T) {
	svc := &stubDocumentService{getErr: apperror.NewNotFound("document 42 not found")}
	r := newTestRouter(svc)
	w := doRequest(r, "GET", "/v1/documents/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDocument_BadID(t *testing.T) {
	r := newTestRouter(&stubDocumentService{})
	w := doRequest(r, "GET", "/v1/documents/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostDocument_InsufficientStockMapsTo400(t *testing.T) {
	svc := &stubDocumentService{postErr: apperror.NewInsufficientStock("Widget")}
	r := newTestRouter(svc)
	w := doRequest(r, "POST", "/v1/documents/1/post", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Widget")
}

func TestPostDocument_UnknownErrorIsOpaque500(t *testing.T) {
	svc := &stubDocumentService{postErr: assert.AnError}
	r := newTestRouter(svc)
	w := doRequest(r, "POST", "/v1/documents/1/post", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
