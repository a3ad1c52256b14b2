// Package viewer assigns stable anonymous identities to gallery
// visitors. A viewer is not a user account: it is a random ID carried
// in a cookie so likes survive page loads without any signup.
package viewer

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie the viewer ID travels in.
const CookieName = "inkmatch_viewer"

// cookieMaxAge keeps the ledger around for roughly a year.
const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// NewID mints a fresh viewer ID.
func NewID() string {
	return "viewer-" + uuid.NewString()
}

// FromRequest extracts the viewer ID from the request cookie. The
// second return value reports whether a cookie was present; when it is
// false the caller got a freshly minted ID that is not yet persisted
// anywhere. Clients that reject cookies get a new identity every
// request, which degrades to an empty like ledger rather than an error.
func FromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return NewID(), false
	}
	return c.Value, true
}

// SetCookie writes the viewer ID cookie on the response.
func SetCookie(w http.ResponseWriter, viewerID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    viewerID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
