package middleware

import (
	"net/http"
	"strings"

	"github.com/blogforge/blog-backend/internal/utils"
)

// RouteClass is the access tier of a page path.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteProtected
	RouteAdmin
)

// Literal paths that are always public.
var publicRoutes = []string{"/", "/login", "/register", "/posts"}

// Prefixes that require an authenticated account. Checked before the generic
// /posts/ detail rule so create and edit pages are not swallowed by it.
var protectedPrefixes = []string{"/dashboard", "/profile", "/posts/create", "/posts/edit"}

const adminPrefix = "/admin"

// ClassifyRoute puts a page path into exactly one access tier. Literal public
// routes win first; post detail pages (/posts/<id>) are public unless the
// path contains /edit.
func ClassifyRoute(path string) RouteClass {
	for _, route := range publicRoutes {
		if path == route {
			return RoutePublic
		}
	}

	if strings.HasPrefix(path, adminPrefix) {
		return RouteAdmin
	}

	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return RouteProtected
		}
	}

	// Post detail pages (/posts/<id>) and anything else left over are
	// public; edit paths never reach here because /posts/edit matched above.
	return RoutePublic
}

// Gate redirects protected and admin page requests to the login page when no
// token cookie is present. It checks presence only; cryptographic
// verification and role enforcement happen in the handlers behind it.
func Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch ClassifyRoute(r.URL.Path) {
		case RouteProtected, RouteAdmin:
			if _, err := r.Cookie(utils.TokenCookieName); err != nil {
				http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
