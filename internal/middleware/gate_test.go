package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogforge/blog-backend/internal/middleware"
	"github.com/blogforge/blog-backend/internal/utils"
)

func TestClassifyRoute(t *testing.T) {
	cases := []struct {
		path string
		want middleware.RouteClass
	}{
		{"/", middleware.RoutePublic},
		{"/login", middleware.RoutePublic},
		{"/register", middleware.RoutePublic},
		{"/posts", middleware.RoutePublic},
		{"/posts/123", middleware.RoutePublic},
		{"/posts/abc-def", middleware.RoutePublic},
		{"/posts/create", middleware.RouteProtected},
		{"/posts/edit/123", middleware.RouteProtected},
		{"/dashboard", middleware.RouteProtected},
		{"/dashboard/drafts", middleware.RouteProtected},
		{"/profile", middleware.RouteProtected},
		{"/admin", middleware.RouteAdmin},
		{"/admin/users", middleware.RouteAdmin},
		{"/admin/posts", middleware.RouteAdmin},
	}

	for _, tc := range cases {
		if got := middleware.ClassifyRoute(tc.path); got != tc.want {
			t.Errorf("ClassifyRoute(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func gateRequest(path string, withCookie bool) *httptest.ResponseRecorder {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Gate(inner)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: "whatever"})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGate_PublicWithoutToken(t *testing.T) {
	for _, path := range []string{"/", "/posts", "/posts/123", "/login"} {
		rec := gateRequest(path, false)
		if rec.Code != http.StatusOK {
			t.Errorf("%s without token: expected pass-through, got %d", path, rec.Code)
		}
	}
}

func TestGate_ProtectedWithoutToken(t *testing.T) {
	for _, path := range []string{"/dashboard", "/profile", "/posts/create", "/posts/edit/123", "/admin/users"} {
		rec := gateRequest(path, false)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Errorf("%s without token: expected redirect, got %d", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}

func TestGate_ProtectedWithToken(t *testing.T) {
	// The gate checks presence only; even a garbage token passes through.
	// Verification happens in the handler behind the gate.
	rec := gateRequest("/dashboard", true)
	if rec.Code != http.StatusOK {
		t.Errorf("expected pass-through with cookie present, got %d", rec.Code)
	}
}
