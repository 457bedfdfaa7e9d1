package shell

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/khoahotran/portfolio/internal/site/section"
	"github.com/khoahotran/portfolio/internal/site/theme"
)

const (
	SplashCookie = "splashSeen"
	SeenCookie   = "seenSections"

	// seenSep joins section IDs in the seen cookie. IDs never contain it.
	seenSep = "."
)

// SectionIDs are the page anchors, in page order.
var SectionIDs = []string{"home", "about", "projects", "technologies", "contact"}

func KnownSection(id string) bool {
	return slices.Contains(SectionIDs, id)
}

// Config is the per-request state owned by the shell and handed to the
// views. It is never mutated after Configure returns.
type Config struct {
	Theme       theme.Preference
	Splash      bool
	SplashDelay time.Duration
	Category    string
	Year        int
	seen        map[string]bool
}

func (c Config) Seen(id string) bool { return c.seen[id] }

func readSeen(r *http.Request) map[string]bool {
	seen := make(map[string]bool)
	c, err := r.Cookie(SeenCookie)
	if err != nil {
		return seen
	}
	for _, id := range strings.Split(c.Value, seenSep) {
		if KnownSection(id) {
			seen[id] = true
		}
	}
	return seen
}

// ObserveSection feeds one intersection report into the section's
// visibility flag and persists it once it flips. It reports whether the
// flag flipped on this call.
func ObserveSection(w http.ResponseWriter, r *http.Request, id string, ratio float64) bool {
	seen := readSeen(r)
	v := section.NewVisibility(seen[id])
	if !v.Observe(ratio) {
		return false
	}
	seen[id] = true

	ids := make([]string, 0, len(seen))
	for _, sid := range SectionIDs {
		if seen[sid] {
			ids = append(ids, sid)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SeenCookie,
		Value:    strings.Join(ids, seenSep),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func markSplashSeen(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SplashCookie,
		Value:    "true",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}
