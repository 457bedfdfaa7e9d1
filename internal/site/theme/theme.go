// Package theme resolves and persists the visitor's dark-mode preference.
package theme

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	CookieName = "darkMode"
	// HintHeader is the client hint carrying the OS color scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
	DarkClass  = "dark"
)

const cookieMaxAge = 365 * 24 * time.Hour

// Preference is the resolved theme. Stored is false when Dark came from
// the OS hint rather than a saved choice.
type Preference struct {
	Dark   bool
	Stored bool
}

func (p Preference) RootClass() string {
	if p.Dark {
		return DarkClass
	}
	return ""
}

// Toggled returns the opposite preference, which is always stored.
func (p Preference) Toggled() Preference {
	return Preference{Dark: !p.Dark, Stored: true}
}

// Resolve reads the saved choice, falling back to the OS hint. A cookie
// that does not hold a JSON boolean is ignored.
func Resolve(r *http.Request) Preference {
	if c, err := r.Cookie(CookieName); err == nil {
		var dark bool
		if err := json.Unmarshal([]byte(c.Value), &dark); err == nil {
			return Preference{Dark: dark, Stored: true}
		}
	}
	hint := strings.Trim(strings.TrimSpace(r.Header.Get(HintHeader)), `"`)
	return Preference{Dark: strings.EqualFold(hint, "dark")}
}

// Persist writes dark to the preference cookie.
func Persist(w http.ResponseWriter, dark bool) {
	value, _ := json.Marshal(dark)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// RequestHint asks the browser to send the color-scheme hint on later
// requests.
func RequestHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", HintHeader)
	w.Header().Add("Vary", HintHeader)
	w.Header().Add("Critical-CH", HintHeader)
}
