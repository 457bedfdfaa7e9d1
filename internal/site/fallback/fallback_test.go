package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/technology"
)

func TestProfile(t *testing.T) {
	p := Profile()
	assert.Equal(t, "Rachit Kapoor", p.Name)
	assert.Equal(t, "https://github.com/rk2281", p.Contact.GitHub)
}

func TestProjects_Shape(t *testing.T) {
	projects := Projects()
	require.Len(t, projects, 4)

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		assert.NoError(t, p.Validate())
		assert.NotNil(t, p.GitHubURL)
		assert.Nil(t, p.DemoURL)
		assert.Nil(t, p.ImageURL)
	}
	assert.Equal(t, []string{"music-player", "food-ordering", "roll-a-die", "farm-fresh"}, ids)
}

func TestTechnologies_Categories(t *testing.T) {
	techs := Technologies()
	require.Len(t, techs, 11)
	assert.Equal(t, []string{
		"Frontend", "Backend", "Programming", "Database", "CSS Framework",
		"Markup", "Styling", "Version Control", "Cloud", "Design",
	}, technology.Categories(techs))
}

func TestFreshCopies(t *testing.T) {
	p := Profile()
	p.Name = "changed"
	assert.Equal(t, "Rachit Kapoor", Profile().Name)

	projects := Projects()
	projects[0].Technologies[0] = "changed"
	*projects[0].GitHubURL = "changed"
	assert.Equal(t, "PHP", Projects()[0].Technologies[0])
	assert.Equal(t, "https://github.com/rk2281", *Projects()[0].GitHubURL)

	techs := Technologies()
	techs[0].Name = "changed"
	assert.Equal(t, "React", Technologies()[0].Name)
}
