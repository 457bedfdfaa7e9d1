package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

func TestStaticProjectRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticProjectRepo()

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, []string{"music-player", "food-ordering", "roll-a-die-game"},
		[]string{projects[0].ID, projects[1].ID, projects[2].ID})

	p, err := repo.FindByID(ctx, "roll-a-die-game")
	require.NoError(t, err)
	require.NotNil(t, p.DemoURL)
	assert.Equal(t, "https://rk2281.github.io/roll_a_die_game/", *p.DemoURL)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSeedContentIsValid(t *testing.T) {
	for _, p := range SeedProjects() {
		assert.NoError(t, p.Validate(), p.ID)
	}

	techs := SeedTechnologies()
	assert.Len(t, techs, 24)
	assert.Equal(t, "Frontend", technology.Categories(techs)[0])
}

func TestStaticProfileRepo(t *testing.T) {
	p, err := NewStaticProfileRepo().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rachit Kapoor", p.Name)
	assert.Equal(t, "https://github.com/rk2281", p.Contact.GitHub)
}
