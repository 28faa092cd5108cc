package preset

import (
	"net/http"
	"time"
)

// CookieName is the single persistence key for the variant.
const CookieName = "preset"

// Store persists a visitor's variant selection between page loads.
type Store interface {
	// Load returns the persisted variant, if a recognized one is present.
	Load(r *http.Request) (Variant, bool)
	// Save persists v on the response.
	Save(w http.ResponseWriter, v Variant)
}

// CookieStore persists the variant in a long-lived cookie, the server-side
// counterpart of the browser's local storage.
type CookieStore struct {
	// Secure marks the cookie as HTTPS-only; enable in production.
	Secure bool
}

func (s CookieStore) Load(r *http.Request) (Variant, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return Parse(c.Value)
}

func (s CookieStore) Save(w http.ResponseWriter, v Variant) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(v),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.Secure,
	})
}
