package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Validation paths reject before any database access, so these run with a
// nil DB.

func doRegister(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{Tokens: NewTokenCodec([]byte("test-secret"), time.Hour)}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	return rec
}

func TestRegister_InvalidBody(t *testing.T) {
	rec := doRegister(t, "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"name":"A"}`,
		`{"name":"A","email":"a@x.com"}`,
		`{"email":"a@x.com","password":"abcdef"}`,
	} {
		rec := doRegister(t, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "Name, email, and password are required") {
			t.Errorf("body %s: unexpected error: %q", body, rec.Body.String())
		}
	}
}

func TestRegister_NameTooLong(t *testing.T) {
	longName := strings.Repeat("x", 51)
	rec := doRegister(t, `{"name":"`+longName+`","email":"a@x.com","password":"abcdef"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Name cannot be more than 50 characters") {
		t.Errorf("unexpected error: %q", rec.Body.String())
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com"} {
		rec := doRegister(t, `{"name":"A","email":"`+email+`","password":"abcdef"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("email %q: expected 400, got %d", email, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "valid email") {
			t.Errorf("email %q: unexpected error: %q", email, rec.Body.String())
		}
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	rec := doRegister(t, `{"name":"A","email":"a@x.com","password":"12345"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Password must be at least 6 characters long") {
		t.Errorf("unexpected error: %q", rec.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h := &Handler{Tokens: NewTokenCodec([]byte("test-secret"), time.Hour)}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := &Handler{Tokens: NewTokenCodec([]byte("test-secret"), time.Hour)}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != TokenCookieName || c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("logout cookie does not clear the token: %+v", c)
	}
}
