package project

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestFeedUseCase(t *testing.T) {
	uc := NewFeedUseCase(persistence.NewStaticProjectRepo(), persistence.NewStaticProfileRepo(), "http://localhost:3000", logger.NewNop())
	uc.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }

	feed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)

	assert.Equal(t, "Rachit Kapoor - Projects", feed.Title)
	assert.Equal(t, "https://github.com/rk2281", feed.Items[0].Link.Href)
	assert.Equal(t, "https://rk2281.github.io/roll_a_die_game/", feed.Items[2].Link.Href)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.True(t, strings.Contains(rss, "<title>Music Player</title>"))
}

func TestListProjects_Order(t *testing.T) {
	out, err := NewListProjectsUseCase(persistence.NewStaticProjectRepo(), logger.NewNop()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "music-player", out.Projects[0].ID)
}
