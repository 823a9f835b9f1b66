package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brokerdesk/internal/model"
	"brokerdesk/internal/repository"
	repoMocks "brokerdesk/internal/repository/mocks"
	"brokerdesk/internal/service"
	serviceMocks "brokerdesk/internal/service/mocks"
	"brokerdesk/internal/storage"
	"brokerdesk/internal/store"
)

func newApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy without audit sink", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", decode[map[string]string](t, resp)["status"])
	})

	t.Run("unhealthy when audit database is down", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		audit.On("Ping", mock.Anything).Return(errors.New("db error")).Once()

		app := fiber.New()
		app.Get("/health", HealthCheck(audit))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decode[errorPayload](t, resp).Error.Code)
		audit.AssertExpectations(t)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTransactionRoutes(t *testing.T) {
	s := store.New()
	app := newApp(Dependencies{Store: s})

	resp := doJSON(t, app, http.MethodPost, "/transactions", `{"awb":"176-12345675","attributes":{"consignee":"PT Maju"}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Transaction](t, resp)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "PT Maju", created.Attributes["consignee"])

	resp = doJSON(t, app, http.MethodGet, "/transactions/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decode[model.Transaction](t, resp).ID)

	resp = doJSON(t, app, http.MethodPatch, "/transactions/"+created.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StatusCompleted, decode[model.Transaction](t, resp).Status)

	resp = doJSON(t, app, http.MethodGet, "/transactions/active", "")
	assert.Equal(t, 0, decode[listResponse[model.Transaction]](t, resp).Total)

	resp = doJSON(t, app, http.MethodGet, "/transactions/completed", "")
	completed := decode[listResponse[model.Transaction]](t, resp)
	require.Equal(t, 1, completed.Total)
	assert.Equal(t, created.ID, completed.Data[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/transactions", "")
	assert.Equal(t, 1, decode[listResponse[model.Transaction]](t, resp).Total)

	resp = doJSON(t, app, http.MethodDelete, "/transactions/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/transactions/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Empty(t, s.Transactions())
	var types []string
	for _, l := range s.Logs() {
		types = append(types, l.Type)
	}
	assert.Equal(t, []string{model.LogTransactionCreated, model.LogTransactionUpdated, model.LogTransactionDeleted}, types)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	s := store.New()
	app := newApp(Dependencies{Store: s})

	resp := doJSON(t, app, http.MethodPatch, "/transactions/"+uuid.NewString(), `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[errorPayload](t, resp).Error.Code)
	assert.Empty(t, s.Logs())
}

func TestCreateTransaction_KeepsUnknownFields(t *testing.T) {
	s := store.New()
	app := newApp(Dependencies{Store: s})

	resp := doJSON(t, app, http.MethodPost, "/transactions", `{"awb":"A1","consignee":"PT Maju","status":"completed"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Transaction](t, resp)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "PT Maju", created.Attributes["consignee"])

	resp = doJSON(t, app, http.MethodPatch, "/transactions/"+created.ID, `{"customsOffice":"CGK"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[model.Transaction](t, resp)
	assert.Equal(t, model.Attributes{"consignee": "PT Maju", "customsOffice": "CGK"}, updated.Attributes)

	resp = doJSON(t, app, http.MethodPost, "/permits", `{"type":"import","transactionId":"`+created.ID+`","office":"CGK"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "CGK", decode[model.Permit](t, resp).Attributes["office"])
}

func TestTransactionRoutes_BadInput(t *testing.T) {
	app := newApp(Dependencies{Store: store.New()})

	t.Run("invalid id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/transactions/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/transactions", `{"awb":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/transactions/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPermitRoutes(t *testing.T) {
	s := store.New()
	app := newApp(Dependencies{Store: s})
	tx := s.AddTransaction(model.TransactionInput{AWB: "A1"})

	resp := doJSON(t, app, http.MethodPost, "/permits", `{"type":"import","transactionId":"`+tx.ID+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[model.Permit](t, resp)
	assert.Equal(t, model.StatusPending, p.Status)

	resp = doJSON(t, app, http.MethodGet, "/permits/pending", "")
	assert.Equal(t, 1, decode[listResponse[model.Permit]](t, resp).Total)

	resp = doJSON(t, app, http.MethodGet, "/transactions/"+tx.ID+"/permits", "")
	assert.Equal(t, 1, decode[listResponse[model.Permit]](t, resp).Total)

	resp = doJSON(t, app, http.MethodPatch, "/permits/"+p.ID, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[model.Permit](t, resp)
	assert.Equal(t, model.StatusApproved, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	resp = doJSON(t, app, http.MethodGet, "/permits/pending", "")
	assert.Equal(t, 0, decode[listResponse[model.Permit]](t, resp).Total)

	resp = doJSON(t, app, http.MethodGet, "/permits/"+p.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/permits/"+uuid.NewString(), `{"status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/permits", "")
	assert.Equal(t, 1, decode[listResponse[model.Permit]](t, resp).Total)
}

func TestLogRoutes(t *testing.T) {
	s := store.New()
	app := newApp(Dependencies{Store: s})

	resp := doJSON(t, app, http.MethodPost, "/logs", `{"type":"note","message":"called carrier","data":{"awb":"A1"}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decode[model.LogEntry](t, resp)
	assert.Equal(t, "note", entry.Type)
	assert.Equal(t, map[string]any{"awb": "A1"}, entry.Data)

	resp = doJSON(t, app, http.MethodGet, "/logs/today", "")
	today := decode[listResponse[model.LogEntry]](t, resp)
	require.Equal(t, 1, today.Total)
	assert.Equal(t, entry.ID, today.Data[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/logs", "")
	assert.Equal(t, 1, decode[listResponse[model.LogEntry]](t, resp).Total)
	assert.Len(t, s.Logs(), 1)
}

func TestFileRoutes(t *testing.T) {
	s := store.New()
	mockSvc := new(serviceMocks.MockFileService)
	app := newApp(Dependencies{Store: s, Files: mockSvc})

	t.Run("register", func(t *testing.T) {
		rec := &model.File{ID: uuid.NewString(), Name: "invoice.pdf"}
		mockSvc.On("Register", mock.Anything, model.FileInput{Name: "invoice.pdf"}).Return(rec, nil).Once()

		resp := doJSON(t, app, http.MethodPost, "/files", `{"name":"invoice.pdf"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, rec.ID, decode[model.File](t, resp).ID)
	})

	t.Run("list and get come from the store", func(t *testing.T) {
		f := s.AddFile(model.FileInput{Name: "manifest.csv"})

		resp := doJSON(t, app, http.MethodGet, "/files", "")
		assert.Equal(t, 1, decode[listResponse[model.File]](t, resp).Total)

		resp = doJSON(t, app, http.MethodGet, "/files/"+f.ID, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "manifest.csv", decode[model.File](t, resp).Name)

		resp = doJSON(t, app, http.MethodGet, "/files/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("download url", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("DownloadURL", mock.Anything, id).Return("https://minio/files/x.pdf?sig", nil).Once()

		resp := doJSON(t, app, http.MethodGet, "/files/"+id+"/download", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "https://minio/files/x.pdf?sig", decode[map[string]string](t, resp)["url"])
	})

	t.Run("download of metadata-only file", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("DownloadURL", mock.Anything, id).Return("", service.ErrNoContent).Once()

		resp := doJSON(t, app, http.MethodGet, "/files/"+id+"/download", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NO_CONTENT", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("content", func(t *testing.T) {
		id := uuid.NewString()
		body := io.NopCloser(strings.NewReader("awb,hawb\n"))
		mockSvc.On("Open", mock.Anything, id).Return(body, storage.ObjectInfo{Size: 9, ContentType: "text/csv"}, nil).Once()

		resp := doJSON(t, app, http.MethodGet, "/files/"+id+"/content", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "awb,hawb\n", string(b))
	})

	t.Run("delete", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		resp := doJSON(t, app, http.MethodDelete, "/files/"+id, "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("delete storage failure", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete storage: boom")).Once()

		resp := doJSON(t, app, http.MethodDelete, "/files/"+id, "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestUploadFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Post("/files/upload", UploadFile(mockSvc))

	multipartBody := func(attrs string) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "manifest.pdf")
		part.Write([]byte("%PDF-1.7"))
		if attrs != "" {
			writer.WriteField("attributes", attrs)
		}
		writer.Close()
		return body, writer.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(`{"awb":"A1"}`)
		expected := &model.File{ID: uuid.NewString(), Name: "manifest.pdf", StorageKey: "files/x.pdf"}
		mockSvc.On("Upload", mock.Anything, mock.Anything, "manifest.pdf", mock.Anything, int64(8), model.Attributes{"awb": "A1"}).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, expected.ID, decode[model.File](t, resp).ID)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/files/upload", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("bad attributes", func(t *testing.T) {
		body, ct := multipartBody(`not json`)
		req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ATTRIBUTES", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		body, ct := multipartBody("")
		mockSvc.On("Upload", mock.Anything, mock.Anything, "manifest.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrStorageDisabled).Once()

		req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_DISABLED", decode[errorPayload](t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestListAuditArchive(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		app := newApp(Dependencies{Store: store.New()})
		resp := doJSON(t, app, http.MethodGet, "/audit/archive", "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "AUDIT_SINK_DISABLED", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("paged", func(t *testing.T) {
		audit := new(repoMocks.MockAuditRepository)
		audit.On("List", mock.Anything, repository.PageQuery{Limit: 5, Offset: 10}).
			Return(&repository.PageResult[model.LogEntry]{Items: []model.LogEntry{{ID: "l1"}}, Total: 11}, nil).Once()

		app := newApp(Dependencies{Store: store.New(), Audit: audit})
		resp := doJSON(t, app, http.MethodGet, "/audit/archive?limit=5&offset=10", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		res := decode[repository.PageResult[model.LogEntry]](t, resp)
		assert.Equal(t, 11, res.Total)
		audit.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		app := newApp(Dependencies{Store: store.New(), Audit: new(repoMocks.MockAuditRepository)})
		resp := doJSON(t, app, http.MethodGet, "/audit/archive?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestRouting(t *testing.T) {
	app := newApp(Dependencies{Store: store.New(), Files: new(serviceMocks.MockFileService)})

	t.Run("not found route", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/non-existent", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/health", "")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestSwaggerUI(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", SwaggerUI("localhost:8080"))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = "desk.example.com"
	req.Header.Set("X-Forwarded-Proto", "https, http")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := decode[map[string]any](t, resp)
	assert.Equal(t, "desk.example.com", doc["host"])
	assert.Equal(t, []any{"https"}, doc["schemes"])
}

func TestSwaggerHost_FallsBackToConfiguredHost(t *testing.T) {
	assert.Equal(t, "localhost:8080", swaggerHost("", "localhost:8080"))
	assert.Equal(t, "desk.example.com", swaggerHost("desk.example.com", "localhost:8080"))
}
