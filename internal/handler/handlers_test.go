package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renascer/internal/dto"
	"renascer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubClientService returns canned values so the tests exercise only the
// HTTP mapping layer.
type stubClientService struct {
	resp *dto.ClientResponse
	list []dto.ClientResponse
	err  error
}

func (s *stubClientService) Create(context.Context, dto.CreateClientRequest) (*dto.ClientResponse, error) {
	return s.resp, s.err
}
func (s *stubClientService) GetByID(context.Context, uint) (*dto.ClientResponse, error) {
	return s.resp, s.err
}
func (s *stubClientService) List(context.Context) ([]dto.ClientResponse, error) {
	return s.list, s.err
}
func (s *stubClientService) Update(context.Context, uint, dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	return s.resp, s.err
}
func (s *stubClientService) Delete(context.Context, uint) error { return s.err }

var _ service.ClientService = (*stubClientService)(nil)

type stubCollectionService struct {
	byDate *dto.CollectionsByDateResponse
	err    error
}

func (s *stubCollectionService) Create(context.Context, dto.CreateCollectionRequest) (*dto.CollectionResponse, error) {
	return nil, s.err
}
func (s *stubCollectionService) GetByID(context.Context, uint) (*dto.CollectionResponse, error) {
	return nil, s.err
}
func (s *stubCollectionService) List(context.Context) ([]dto.CollectionResponse, error) {
	return nil, s.err
}
func (s *stubCollectionService) Update(context.Context, uint, dto.UpdateCollectionRequest) (*dto.CollectionResponse, error) {
	return nil, s.err
}
func (s *stubCollectionService) UpdateStatus(context.Context, uint, string) (*dto.CollectionResponse, error) {
	return nil, s.err
}
func (s *stubCollectionService) Delete(context.Context, uint) error { return s.err }
func (s *stubCollectionService) ByDate(context.Context, string) (*dto.CollectionsByDateResponse, error) {
	return s.byDate, s.err
}

var _ service.CollectionService = (*stubCollectionService)(nil)

func clientRouter(svc service.ClientService) *gin.Engine {
	r := gin.New()
	h := NewClientsHandler(svc)
	r.POST("/clients", h.Create)
	r.GET("/clients/:id", h.GetByID)
	r.DELETE("/clients/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteClient_NotFoundMapsTo404(t *testing.T) {
	r := clientRouter(&stubClientService{err: &service.NotFoundError{Resource: "Client"}})

	w := doRequest(r, http.MethodDelete, "/clients/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Client not found"}`, w.Body.String())
}

func TestGetClient_MalformedID(t *testing.T) {
	r := clientRouter(&stubClientService{})

	w := doRequest(r, http.MethodGet, "/clients/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid ID"}`, w.Body.String())
}

func TestCreateClient_ValidationDetails(t *testing.T) {
	r := clientRouter(&stubClientService{})

	w := doRequest(r, http.MethodPost, "/clients",
		`{"name":"Ana Costa","taxId":"555.666.777-88","phone":"(11) 96789-0123","address":"300 Home Street"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid data", body.Error)
	assert.Equal(t, "required", body.Details["Email"])
}

func TestCreateClient_ConflictMapsTo409(t *testing.T) {
	r := clientRouter(&stubClientService{err: &service.ConflictError{Msg: "Tax ID or email already registered"}})

	w := doRequest(r, http.MethodPost, "/clients",
		`{"name":"Ana Costa","taxId":"555.666.777-88","phone":"(11) 96789-0123","address":"300 Home Street","email":"ana.costa@email.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Tax ID or email already registered"}`, w.Body.String())
}

func TestCollectionsByDate_BadRequestMapsTo400(t *testing.T) {
	r := gin.New()
	h := NewCollectionsHandler(&stubCollectionService{err: &service.BadRequestError{Msg: "Invalid date format. Use YYYY-MM-DD"}})
	r.GET("/collections/by-date/:date", h.ByDate)

	w := doRequest(r, http.MethodGet, "/collections/by-date/not-a-date", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid date format. Use YYYY-MM-DD"}`, w.Body.String())
}

func TestCreateCollection_RejectsNonPositiveWeight(t *testing.T) {
	r := gin.New()
	h := NewCollectionsHandler(&stubCollectionService{})
	r.POST("/collections", h.Create)

	w := doRequest(r, http.MethodPost, "/collections",
		`{"supplierId":1,"productId":2,"dateTime":"2025-10-28T11:15:00Z","location":"North Zone Warehouse","weight":0,"value":100}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid data", body.Error)
	assert.Contains(t, body.Details, "Weight")
}

func TestUpdateCollectionStatus_RejectsUnknownStatus(t *testing.T) {
	r := gin.New()
	h := NewCollectionsHandler(&stubCollectionService{})
	r.PATCH("/collections/:id/status", h.UpdateStatus)

	w := doRequest(r, http.MethodPatch, "/collections/1/status", `{"status":"Done"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid data", body.Error)
	assert.Equal(t, "oneof", body.Details["Status"])
}
