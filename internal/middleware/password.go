package middleware

import (
	"net/http"

	"github.com/anviet/showcase/internal/response"
)

// PasswordHeader carries the shared upload password on header-authenticated
// routes such as the signed-upload hand-off.
const PasswordHeader = "X-Upload-Password"

// RequirePassword returns middleware that rejects requests whose
// PasswordHeader does not match the configured shared secret. An empty
// secret rejects everything: the deployment has not enabled uploads.
func RequirePassword(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" || r.Header.Get(PasswordHeader) != secret {
				response.Unauthorized(w, "wrong password")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
