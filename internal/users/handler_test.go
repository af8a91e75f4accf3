package users

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akramarev/userreg/internal/store"
)

func newTestRouter(t *testing.T) (chi.Router, *store.Store) {
	t.Helper()

	svc, st := newTestService(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Post("/api/register", h.Register)
	r.Get("/api/users", h.ListUsers)
	return r, st
}

func doRegister(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpointCreated(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRegister(t, r, `{"username":"alice1","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Positive(t, body.UserID)
}

func TestRegisterEndpointValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRegister(t, r, `{"username":"ab","email":"nope","password":"123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Errors  []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "username", body.Errors[0].Field)
}

func TestRegisterEndpointMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRegister(t, r, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRegister(t, r, `{"username":"alice1","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRegister(t, r, `{"username":"alice1","email":"other@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Username or email already exists", body.Message)
}

func TestRegisterEndpointStoreFault(t *testing.T) {
	r, st := newTestRouter(t)
	require.NoError(t, st.Close())

	rec := doRegister(t, r, `{"username":"alice1","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// Generic message only; driver detail must not leak.
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "sql")
}

func TestListEndpointEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListEndpointExcludesPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRegister(t, r, `{"username":"alice1","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	assert.Equal(t, "alice1", list[0]["username"])
	assert.Equal(t, "alice@example.com", list[0]["email"])
	assert.NotContains(t, list[0], "password")
	assert.NotContains(t, list[0], "password_hash")
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestListEndpointStoreFault(t *testing.T) {
	r, st := newTestRouter(t)
	require.NoError(t, st.Close())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
