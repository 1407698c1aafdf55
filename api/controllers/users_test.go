package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	usersvc "github.com/tidynest/tidynest-backend/internal/users"
	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func testUsersController(t *testing.T) (usersvc.Service, *config.Config, *logger.Logger) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := usersvc.NewService(&storetest.Backend[models.User]{}, nil, logg)
	if err != nil {
		t.Fatalf("users service: %v", err)
	}
	cfg := &config.Config{
		Password: config.PasswordConfig{
			ArgonMemoryKB:    32768,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
	}
	return svc, cfg, logg
}

func TestUsersCreateHappyPath(t *testing.T) {
	svc, cfg, logg := testUsersController(t)
	handler := UsersCreate(svc, cfg, logg)

	body := `{"email":"Host@Example.com","display_name":"Host","password":"correct-horse","role":"manager"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"host@example.com"`) {
		t.Fatalf("expected normalized email in response: %s", resp.Body.String())
	}
	if strings.Contains(resp.Body.String(), "correct-horse") {
		t.Fatal("plaintext password must never appear in a response")
	}
}

func TestUsersCreateRejectsUnknownRole(t *testing.T) {
	svc, cfg, logg := testUsersController(t)
	handler := UsersCreate(svc, cfg, logg)

	body := `{"email":"a@b.com","display_name":"A","password":"long-enough","role":"superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad role, got %d", resp.Code)
	}
}

func TestUsersCreateRejectsUnknownFields(t *testing.T) {
	svc, cfg, logg := testUsersController(t)
	handler := UsersCreate(svc, cfg, logg)

	body := `{"email":"a@b.com","display_name":"A","password":"long-enough","role":"user","admin":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.Code)
	}
}

func TestUsersGetUnknownID(t *testing.T) {
	svc, _, logg := testUsersController(t)

	r := chi.NewRouter()
	r.Get("/{id}", UsersGet(svc, logg))

	req := httptest.NewRequest(http.MethodGet, "/9f4ff5f0-0000-0000-0000-000000000000", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad uuid, got %d", resp.Code)
	}
}
