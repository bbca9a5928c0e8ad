package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orrya/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	loginFunc        func(ctx context.Context, username, password string) (*service.LoginResult, error)
	authenticateFunc func(ctx context.Context, token string) (string, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, token)
	}
	return "", service.ErrUnauthorized
}

func postLogin(h *AdminAuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestAdminAuthHandler_Login_Success(t *testing.T) {
	exp := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResult, error) {
			if username != "admin" || password != "pw" {
				t.Errorf("unexpected credentials forwarded: %q", username)
			}
			return &service.LoginResult{Token: "tok.en.value", ExpiresAt: exp}, nil
		},
	}
	rec := postLogin(NewAdminAuthHandler(mock), `{"username":"admin","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body: %s", rec.Code, rec.Body.String())
	}
	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token != "tok.en.value" || resp.Message != "Login successful" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.ExpiresAt != "2026-07-02T10:00:00Z" {
		t.Errorf("unexpected expires_at %q", resp.ExpiresAt)
	}
}

func TestAdminAuthHandler_Login_InvalidCredentials(t *testing.T) {
	rec := postLogin(NewAdminAuthHandler(&mockAuthService{}), `{"username":"admin","password":"nope"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Invalid credentials" {
		t.Errorf("expected 'Invalid credentials', got %q", resp["error"])
	}
}

func TestAdminAuthHandler_Login_MissingFields(t *testing.T) {
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResult, error) {
			return nil, &service.ValidationError{Message: "Username and password required"}
		},
	}
	for _, body := range []string{`{"username":"admin"}`, `{}`, `not json`} {
		rec := postLogin(NewAdminAuthHandler(mock), body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAdminAuthHandler_Login_UnexpectedError(t *testing.T) {
	mock := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResult, error) {
			return nil, errors.New("signing failed")
		},
	}
	rec := postLogin(NewAdminAuthHandler(mock), `{"username":"admin","password":"pw"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
