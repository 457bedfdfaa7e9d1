package persistence

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

// The static repositories serve the built-in portfolio content. They back
// the API when no database is configured and seed the database otherwise.

func strPtr(s string) *string { return &s }

func SeedProfile() *profile.Profile {
	return &profile.Profile{
		Name:      "Rachit Kapoor",
		Title:     "Front-End Developer",
		Bio:       "Proficient Front-End Developer with hands-on experience in full-stack development. Passionate about Generative AI and continuous learning.",
		PhotoURL:  "https://drive.google.com/uc?export=view&id=1435Jiu-4FbjKJ67-XVBj11Kt1_FXESP7",
		ResumeURL: "https://drive.google.com/file/d/1LNp08GZwL9EPKHrzIPsKVUcHe6CbHNcl/view",
		Contact: profile.Contact{
			Email:    "rachitkapoor2281@gmail.com",
			GitHub:   "https://github.com/rk2281",
			LinkedIn: "https://www.linkedin.com/in/rachitkapoor1/",
		},
	}
}

func SeedProjects() []*project.Project {
	return []*project.Project{
		{
			ID:           "music-player",
			Title:        "Music Player",
			Description:  "A PHP-MySQL based system for music playback with features like mute, volume control, and user login functionality.",
			Technologies: []string{"PHP", "MySQL", "JavaScript", "HTML", "CSS"},
			GitHubURL:    strPtr("https://github.com/rk2281"),
		},
		{
			ID:           "food-ordering",
			Title:        "Food Ordering Website",
			Description:  "A fully responsive HTML/CSS-based food delivery platform with comprehensive user registration system.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Bootstrap", "Responsive Design"},
			GitHubURL:    strPtr("https://github.com/rk2281"),
		},
		{
			ID:           "roll-a-die-game",
			Title:        "Roll A Die Game",
			Description:  "An interactive dice rolling game built with engaging user interface and game mechanics.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Game Development"},
			GitHubURL:    strPtr("https://github.com/rk2281"),
			DemoURL:      strPtr("https://rk2281.github.io/roll_a_die_game/"),
		},
	}
}

func SeedTechnologies() []technology.Technology {
	return []technology.Technology{
		{Name: "React", Category: "Frontend", Level: technology.LevelAdvanced},
		{Name: "PHP", Category: "Backend", Level: technology.LevelAdvanced},
		{Name: "JavaScript", Category: "Programming", Level: technology.LevelAdvanced},
		{Name: "MySQL", Category: "Database", Level: technology.LevelIntermediate},
		{Name: "Bootstrap", Category: "CSS Framework", Level: technology.LevelAdvanced},
		{Name: "HTML", Category: "Markup", Level: technology.LevelExpert},
		{Name: "CSS", Category: "Styling", Level: technology.LevelAdvanced},
		{Name: "Python", Category: "Programming", Level: technology.LevelIntermediate},
		{Name: "GitHub", Category: "Version Control", Level: technology.LevelAdvanced},
		{Name: "AWS Cloud Services", Category: "Cloud", Level: technology.LevelIntermediate},
		{Name: "UI/UX Design", Category: "Design", Level: technology.LevelIntermediate},
		{Name: "Streamlit", Category: "Framework", Level: technology.LevelIntermediate},
		{Name: "CodeIgniter", Category: "Framework", Level: technology.LevelIntermediate},
		{Name: "OpenCV", Category: "AI/ML", Level: technology.LevelIntermediate},
		{Name: "Numpy", Category: "AI/ML", Level: technology.LevelIntermediate},
		{Name: "Pandas", Category: "AI/ML", Level: technology.LevelIntermediate},
		{Name: "MySQL Workbench", Category: "Database Tools", Level: technology.LevelIntermediate},
		{Name: "phpMyAdmin", Category: "Database Tools", Level: technology.LevelAdvanced},
		{Name: "Email on Acid", Category: "Email Tools", Level: technology.LevelIntermediate},
		{Name: "Putsmail", Category: "Email Tools", Level: technology.LevelIntermediate},
		{Name: "Python Colab", Category: "Development Tools", Level: technology.LevelAdvanced},
		{Name: "Jupyter Notebook", Category: "Development Tools", Level: technology.LevelAdvanced},
		{Name: "VS Code", Category: "Development Tools", Level: technology.LevelExpert},
		{Name: "AI Tools", Category: "AI/ML", Level: technology.LevelIntermediate},
	}
}

type staticProfileRepo struct{}

func NewStaticProfileRepo() profile.Repository { return staticProfileRepo{} }

func (staticProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	return SeedProfile(), nil
}

type staticProjectRepo struct {
	projects []*project.Project
}

func NewStaticProjectRepo() project.Repository {
	return &staticProjectRepo{projects: SeedProjects()}
}

func (r *staticProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	out := make([]*project.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *staticProjectRepo) FindByID(ctx context.Context, id string) (*project.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("project", id)
}

type staticTechnologyRepo struct{}

func NewStaticTechnologyRepo() technology.Repository { return staticTechnologyRepo{} }

func (staticTechnologyRepo) List(ctx context.Context) ([]technology.Technology, error) {
	return SeedTechnologies(), nil
}

// discardContactRepo stands in for contact storage when no database is
// configured. The use case still logs and publishes every message.
type discardContactRepo struct{}

func NewDiscardContactRepo() contact.Repository { return discardContactRepo{} }

func (discardContactRepo) Save(ctx context.Context, m *contact.Message) error { return nil }
