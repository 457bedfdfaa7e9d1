package project

import (
	"context"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// FeedUseCase publishes the project list as a syndication feed.
type FeedUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	siteURL     string
	now         func() time.Time
	logger      logger.Logger
}

func NewFeedUseCase(pRepo project.Repository, profRepo profile.Repository, siteURL string, log logger.Logger) *FeedUseCase {
	return &FeedUseCase{
		projectRepo: pRepo,
		profileRepo: profRepo,
		siteURL:     siteURL,
		now:         time.Now,
		logger:      log,
	}
}

func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	owner, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for feed", err)
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       owner.Name + " - Projects",
		Link:        &feeds.Link{Href: uc.siteURL + "/#projects"},
		Description: owner.Bio,
		Author:      &feeds.Author{Name: owner.Name, Email: owner.Contact.Email},
		Created:     uc.now(),
	}

	for _, p := range projects {
		link := uc.siteURL + "/#projects"
		switch {
		case p.DemoURL != nil:
			link = *p.DemoURL
		case p.GitHubURL != nil:
			link = *p.GitHubURL
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Created:     feed.Created,
		})
	}

	uc.logger.Info("Project feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
