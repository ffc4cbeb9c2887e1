package middleware

import (
	"net/http"
)

// AdminPasswordHeader carries the admin password on admin API requests.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth guards the admin routes with the stored admin password. check
// resolves whether the presented password is valid; a storage error counts
// as invalid.
func AdminAuth(check func(r *http.Request, password string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			password := r.Header.Get(AdminPasswordHeader)
			if password == "" || !check(r, password) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"invalid password"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
