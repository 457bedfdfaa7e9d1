// Package shell composes the single page: it resolves the visitor's
// state, mounts the data sections concurrently and hands both to the
// views.
package shell

import (
	"context"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/internal/site/fallback"
	"github.com/khoahotran/portfolio/internal/site/section"
	"github.com/khoahotran/portfolio/internal/site/theme"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Fetcher is the part of the API client the shell needs.
type Fetcher interface {
	Profile(ctx context.Context) (*profile.Profile, error)
	Projects(ctx context.Context) ([]*project.Project, error)
	Technologies(ctx context.Context) ([]technology.Technology, error)
}

type mountable interface {
	Name() string
	Mount(ctx context.Context)
	Unmount()
}

// Page is one composed response.
type Page struct {
	Config       Config
	Profile      *section.Fetchable[*profile.Profile]
	Projects     *section.Fetchable[[]*project.Project]
	Technologies *section.Fetchable[[]technology.Technology]

	settled chan struct{}
}

// Settled is closed once every section fetch has returned, including
// fetches whose results were dropped.
func (p *Page) Settled() <-chan struct{} { return p.settled }

type Shell struct {
	fetcher     Fetcher
	splashDelay time.Duration
	logger      logger.Logger
	now         func() time.Time
}

func New(f Fetcher, splashDelay time.Duration, log logger.Logger) *Shell {
	return &Shell{fetcher: f, splashDelay: splashDelay, logger: log, now: time.Now}
}

// Configure resolves the request's theme, splash and visibility state.
// The splash is shown once per visitor, so the cookie is set here.
func (s *Shell) Configure(w http.ResponseWriter, r *http.Request, category string) Config {
	cfg := Config{
		Theme:       theme.Resolve(r),
		SplashDelay: s.splashDelay,
		Category:    category,
		Year:        s.now().Year(),
		seen:        readSeen(r),
	}
	if cfg.Category == "" {
		cfg.Category = technology.AllCategories
	}
	if _, err := r.Cookie(SplashCookie); err != nil {
		cfg.Splash = true
		markSplashSeen(w)
	}
	theme.RequestHint(w)
	return cfg
}

// Compose mounts the profile, projects and technologies sections in
// parallel and returns when all are ready or ctx ends. On ctx end every
// section is unmounted and late results are dropped.
func (s *Shell) Compose(ctx context.Context, cfg Config) *Page {
	page := &Page{
		Config:       cfg,
		Profile:      section.NewFetchable[*profile.Profile]("profile", s.fetcher.Profile, fallback.Profile, s.logger),
		Projects:     section.NewFetchable[[]*project.Project]("projects", s.fetcher.Projects, fallback.Projects, s.logger),
		Technologies: section.NewFetchable[[]technology.Technology]("technologies", s.fetcher.Technologies, fallback.Technologies, s.logger),
		settled:      make(chan struct{}),
	}
	sections := []mountable{page.Profile, page.Projects, page.Technologies}

	var wg conc.WaitGroup
	for _, sec := range sections {
		wg.Go(func() { sec.Mount(ctx) })
	}
	go func() {
		defer close(page.settled)
		if r := wg.WaitAndRecover(); r != nil {
			s.logger.Error("Section fetch panicked", r.AsError())
		}
	}()

	select {
	case <-page.settled:
	case <-ctx.Done():
		for _, sec := range sections {
			sec.Unmount()
		}
		s.logger.Debug("Composition abandoned", zap.Error(ctx.Err()))
	}
	return page
}
