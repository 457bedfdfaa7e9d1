package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reload carries the cookies of a response into a fresh request.
func reload(t *testing.T, rr *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestResolve_OSDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, Preference{Dark: false}, Resolve(req))

	req.Header.Set(HintHeader, `"dark"`)
	assert.Equal(t, Preference{Dark: true}, Resolve(req))

	req.Header.Set(HintHeader, "light")
	assert.Equal(t, Preference{Dark: false}, Resolve(req))
}

func TestPersist_SurvivesReload(t *testing.T) {
	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.Header.Set(HintHeader, "dark")
	pref := Resolve(first)
	require.True(t, pref.Dark)

	toggled := pref.Toggled()
	rr := httptest.NewRecorder()
	Persist(rr, toggled.Dark)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "false", cookies[0].Value)

	// The stored value wins over the OS hint on the next load.
	next := reload(t, rr)
	next.Header.Set(HintHeader, "dark")
	assert.Equal(t, Preference{Dark: false, Stored: true}, Resolve(next))

	rr = httptest.NewRecorder()
	Persist(rr, true)
	assert.Equal(t, Preference{Dark: true, Stored: true}, Resolve(reload(t, rr)))
}

func TestResolve_IgnoresMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "yes"})
	req.Header.Set(HintHeader, "dark")

	assert.Equal(t, Preference{Dark: true}, Resolve(req))
}

func TestRootClass(t *testing.T) {
	assert.Equal(t, "dark", Preference{Dark: true}.RootClass())
	assert.Empty(t, Preference{}.RootClass())
}
