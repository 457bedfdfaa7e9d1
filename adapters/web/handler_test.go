package web

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/internal/site/client"
	"github.com/khoahotran/portfolio/internal/site/contact"
	"github.com/khoahotran/portfolio/internal/site/fallback"
	"github.com/khoahotran/portfolio/internal/site/shell"
	"github.com/khoahotran/portfolio/internal/site/theme"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const projectsJSON = `{"projects":[{"id":"p1","title":"T","description":"D","technologies":["X"],"github_url":"http://g","demo_url":null,"image_url":null}]}`

type SiteTestSuite struct {
	suite.Suite
	backend      *httptest.Server
	contactCalls atomic.Int32
	router       *gin.Engine
}

func (s *SiteTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.contactCalls.Store(0)

	s.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case client.PathProjects:
			w.Write([]byte(projectsJSON))
		case client.PathContact:
			s.contactCalls.Add(1)
			w.Write([]byte(`{"status":"ok","message":"Thanks!"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	s.router = s.newRouter(s.backend.URL)
}

func (s *SiteTestSuite) TearDownTest() {
	s.backend.Close()
}

func (s *SiteTestSuite) newRouter(backendURL string) *gin.Engine {
	log := logger.NewNop()
	api := client.New(backendURL, log)
	sh := shell.New(api, time.Second, log)
	return NewRouter(NewSiteHandler(sh, api, log), httpAdapter.NewMetrics("site-test"), log)
}

func TestSite(t *testing.T) {
	suite.Run(t, new(SiteTestSuite))
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func contactValues() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Nice work"},
	}
}

func (s *SiteTestSuite) Test_Index_ProjectsRemoteOthersFallback() {
	rr := serve(s.router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(s.T(), http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Equal(s.T(), 1, strings.Count(body, `class="card project-card"`))
	assert.Contains(s.T(), body, "<h3>T</h3>")
	assert.Contains(s.T(), body, `<span class="tech-tag">X</span>`)
	assert.Contains(s.T(), body, `href="http://g"`)
	assert.Equal(s.T(), 1, strings.Count(body, ">Code</a>"))
	assert.NotContains(s.T(), body, ">Demo</a>")

	// Profile and technologies failed and fall back in full.
	assert.Contains(s.T(), body, fallback.Profile().Bio)
	for _, tech := range fallback.Technologies() {
		assert.Contains(s.T(), body, "<h3>"+tech.Name+"</h3>")
	}
	for _, p := range fallback.Projects() {
		assert.NotContains(s.T(), body, `data-project="`+p.ID+`"`)
	}
}

func (s *SiteTestSuite) Test_Index_NullProjectFallsBack() {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == client.PathProjects {
			w.Write([]byte(`{"projects":[null]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	rr := serve(s.newRouter(backend.URL), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(s.T(), http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Equal(s.T(), len(fallback.Projects()), strings.Count(body, `class="card project-card"`))
	for _, p := range fallback.Projects() {
		assert.Contains(s.T(), body, `data-project="`+p.ID+`"`)
	}
}

func (s *SiteTestSuite) Test_Index_SplashOnce() {
	rr := serve(s.router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(s.T(), rr.Body.String(), "Loading Portfolio...")

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	rr = serve(s.router, next)
	assert.NotContains(s.T(), rr.Body.String(), "Loading Portfolio...")
}

func (s *SiteTestSuite) Test_Index_CategoryFilter() {
	rr := serve(s.router, httptest.NewRequest(http.MethodGet, "/?category=Programming", nil))
	body := rr.Body.String()

	assert.Contains(s.T(), body, `class="tab active">Programming</a>`)
	assert.Contains(s.T(), body, "<h3>JavaScript</h3>")
	assert.Contains(s.T(), body, "<h3>Python</h3>")
	assert.NotContains(s.T(), body, "<h3>React</h3>")
}

func (s *SiteTestSuite) Test_Contact_SuccessClearsFields() {
	rr := serve(s.router, postForm("/contact", contactValues()))
	require.Equal(s.T(), http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Contains(s.T(), body, `<div class="banner success" role="status">Thanks!</div>`)
	for _, name := range []string{"name", "email", "subject"} {
		assert.Contains(s.T(), body, `name="`+name+`" value=""`)
	}
	assert.Contains(s.T(), body, "required></textarea>")
	assert.EqualValues(s.T(), 1, s.contactCalls.Load())
}

func (s *SiteTestSuite) Test_Contact_ConnectionRefusedKeepsFields() {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(s.T(), err)
	addr := l.Addr().String()
	require.NoError(s.T(), l.Close())

	router := s.newRouter("http://" + addr)
	rr := serve(router, postForm("/contact", contactValues()))
	require.Equal(s.T(), http.StatusOK, rr.Code)
	body := rr.Body.String()

	assert.Contains(s.T(), body, `class="banner error"`)
	assert.Contains(s.T(), body, contact.MessageNetworkError)
	assert.Contains(s.T(), body, `value="Ada"`)
	assert.Contains(s.T(), body, `value="ada@example.com"`)
	assert.Contains(s.T(), body, `value="Hello"`)
	assert.Contains(s.T(), body, ">Nice work</textarea>")
	// The rest of the page still renders from fallback content.
	assert.Contains(s.T(), body, `data-project="music-player"`)
}

func (s *SiteTestSuite) Test_Contact_MissingFieldSkipsPost() {
	values := contactValues()
	values.Set("subject", "")

	rr := serve(s.router, postForm("/contact", values))

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.Contains(s.T(), rr.Body.String(), `value="Ada"`)
	assert.NotContains(s.T(), rr.Body.String(), `class="banner`)
	assert.EqualValues(s.T(), 0, s.contactCalls.Load())
}

func (s *SiteTestSuite) Test_ThemeToggle_Persists() {
	first := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	first.Header.Set("Accept", "application/json")
	rr := serve(s.router, first)
	require.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), `{"darkMode":true}`, rr.Body.String())

	cookies := rr.Result().Cookies()
	require.Len(s.T(), cookies, 1)
	assert.Equal(s.T(), theme.CookieName, cookies[0].Name)
	assert.Equal(s.T(), "true", cookies[0].Value)

	reload := httptest.NewRequest(http.MethodGet, "/", nil)
	reload.AddCookie(cookies[0])
	page := serve(s.router, reload)
	assert.Contains(s.T(), page.Body.String(), `<html lang="en" class="dark">`)

	back := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	back.AddCookie(cookies[0])
	rr = serve(s.router, back)
	assert.Equal(s.T(), http.StatusSeeOther, rr.Code)
	assert.Equal(s.T(), "false", rr.Result().Cookies()[0].Value)
}

func (s *SiteTestSuite) Test_Index_OSDarkDefault() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(theme.HintHeader, "dark")
	rr := serve(s.router, req)
	assert.Contains(s.T(), rr.Body.String(), `<html lang="en" class="dark">`)

	rr = serve(s.router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(s.T(), rr.Body.String(), `<html lang="en">`)
}

func (s *SiteTestSuite) Test_Visibility() {
	rr := serve(s.router, postForm("/visibility/about", url.Values{"ratio": {"0.45"}}))
	require.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), `{"section":"about","entered":true}`, rr.Body.String())

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	body := serve(s.router, next).Body.String()
	assert.Contains(s.T(), body, `id="about" class="section" data-section="about"`)
	assert.Contains(s.T(), body, `id="projects" class="section entrance"`)

	rr = serve(s.router, postForm("/visibility/navbar", url.Values{"ratio": {"1"}}))
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)

	rr = serve(s.router, postForm("/visibility/about", url.Values{"ratio": {"lots"}}))
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}
