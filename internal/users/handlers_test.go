package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/utils"
)

// Covers the auth and role-check paths that reject before any database
// access; the handler's DB stays nil.

var testCodec = auth.NewTokenCodec([]byte("test-secret"), time.Hour)

func tokenFor(t *testing.T, role utils.Role) string {
	t.Helper()
	tok, err := testCodec.Issue("acct-1", "a@x.com", role)
	if err != nil {
		t.Fatalf("issuing test token: %v", err)
	}
	return tok
}

func callAdmin(t *testing.T, handlerFunc http.HandlerFunc, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestAdminList_NoToken(t *testing.T) {
	h := &Handler{Tokens: testCodec}

	rec := callAdmin(t, h.AdminList, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdminList_InvalidToken(t *testing.T) {
	h := &Handler{Tokens: testCodec}

	rec := callAdmin(t, h.AdminList, "garbage")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid token") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestAdminEndpoints_NonAdminGets403(t *testing.T) {
	h := &Handler{Tokens: testCodec}
	userToken := tokenFor(t, utils.RoleUser)

	for name, fn := range map[string]http.HandlerFunc{
		"AdminList":   h.AdminList,
		"AdminCreate": h.AdminCreate,
		"AdminUpdate": h.AdminUpdate,
		"AdminDelete": h.AdminDelete,
	} {
		rec := callAdmin(t, fn, userToken)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: expected 403 for user role, got %d", name, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), "Admin access required") {
			t.Errorf("%s: unexpected body: %q", name, rec.Body.String())
		}
	}
}

func TestAdminCreate_Validation(t *testing.T) {
	h := &Handler{Tokens: testCodec}
	adminToken := tokenFor(t, utils.RoleAdmin)

	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing fields", `{"name":"A"}`, "Name, email, and password are required"},
		{"short password", `{"name":"A","email":"a@x.com","password":"12345"}`, "Password must be at least 6 characters long"},
		{"bad role", `{"name":"A","email":"a@x.com","password":"123456","role":"root"}`, "Invalid role"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(tc.body))
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: adminToken})
		rec := httptest.NewRecorder()
		h.AdminCreate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tc.wantMsg) {
			t.Errorf("%s: expected %q in body, got %q", tc.name, tc.wantMsg, rec.Body.String())
		}
	}
}

func TestProfile_NoToken(t *testing.T) {
	h := &Handler{Tokens: testCodec}

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestUpdateProfile_ExpiredToken(t *testing.T) {
	expiredCodec := auth.NewTokenCodec([]byte("test-secret"), -time.Second)
	tok, err := expiredCodec.Issue("acct-1", "a@x.com", utils.RoleUser)
	if err != nil {
		t.Fatalf("issuing expired token: %v", err)
	}

	h := &Handler{Tokens: testCodec}
	req := httptest.NewRequest(http.MethodPut, "/api/user/profile", strings.NewReader(`{}`))
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: tok})
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", rec.Code)
	}
}
