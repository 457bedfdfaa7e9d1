// Package fallback holds the content the site renders when the API cannot
// be reached. Every call returns a fresh copy.
package fallback

import (
	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
)

func Profile() *profile.Profile {
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

func link(s string) *string { return &s }

func Projects() []*project.Project {
	return []*project.Project{
		{
			ID:           "music-player",
			Title:        "Music Player",
			Description:  "A PHP-MySQL based system for music playback with features like mute, volume control, and user login functionality.",
			Technologies: []string{"PHP", "MySQL", "JavaScript", "HTML", "CSS"},
			GitHubURL:    link("https://github.com/rk2281"),
		},
		{
			ID:           "food-ordering",
			Title:        "Food Ordering Website",
			Description:  "A fully responsive HTML/CSS-based food delivery platform with comprehensive user registration system.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Bootstrap", "Responsive Design"},
			GitHubURL:    link("https://github.com/rk2281"),
		},
		{
			ID:           "roll-a-die",
			Title:        "Roll a Die",
			Description:  "A browser-based dice rolling game built with HTML, CSS, and JavaScript. Designed as a practice project to strengthen DOM manipulation, JavaScript fundamentals, event handling, and game logic.",
			Technologies: []string{"HTML", "CSS", "JavaScript"},
			GitHubURL:    link("https://rk2281.github.io/roll_a_die_game/"),
		},
		{
			ID:           "farm-fresh",
			Title:        "Farm Fresh Website | Backend Fetching Data",
			Description:  "Built a backend service in Node.js to serve farm product data (e.g., mangoes, rice, tea, butter) directly from JSON documents, enabling integration with front-end or mobile clients.",
			Technologies: []string{"HTML", "CSS", "Node.js", "JSON-Documents", "Render (Hosting)"},
			GitHubURL:    link("https://indian-farmfresh-backend-1.onrender.com/"),
		},
	}
}

func Technologies() []technology.Technology {
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
	}
}
