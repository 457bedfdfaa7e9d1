package view

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/site/section"
)

// AvatarURL is the generated avatar used when the profile photo is
// missing or fails to load.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&size=400&background=3b82f6&color=ffffff&bold=true", url.PathEscape(name))
}

func loadingBlock(what string) g.Node {
	return Div(Class("loading"), Div(Class("spinner")), P(g.Textf("Loading %s...", what)))
}

func HeroSection(state section.State, p *profile.Profile, seen bool) g.Node {
	if !state.Ready() || p == nil {
		return Section(sectionAttrs("home", seen), loadingBlock("profile"))
	}

	photo := p.PhotoURL
	avatar := AvatarURL(p.Name)
	if photo == "" {
		photo = avatar
	}

	return Section(sectionAttrs("home", seen),
		Div(Class("hero"),
			Img(Src(photo), Alt(p.Name), Class("avatar"),
				g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", avatar)),
			),
			H1(g.Textf("Hi, I'm %s", p.Name)),
			H2(Class("hero-title"), g.Text(p.Title)),
			P(Class("hero-bio"), g.Text(p.Bio)),
			Div(Class("hero-actions"),
				A(Href("#contact"), Class("btn primary"), g.Text("Get In Touch")),
				g.If(p.ResumeURL != "",
					A(Href(p.ResumeURL), Target("_blank"), Rel("noopener noreferrer"), Class("btn"), g.Text("Download Resume")),
				),
			),
			Div(Class("social-links"),
				g.If(p.Contact.GitHub != "", A(Href(p.Contact.GitHub), Target("_blank"), Rel("noopener noreferrer"), g.Text("GitHub"))),
				g.If(p.Contact.LinkedIn != "", A(Href(p.Contact.LinkedIn), Target("_blank"), Rel("noopener noreferrer"), g.Text("LinkedIn"))),
				g.If(p.Contact.Email != "", A(Href("mailto:"+p.Contact.Email), g.Text("Email"))),
			),
		),
	)
}

type skillCard struct {
	icon   string
	title  string
	skills []string
}

var skillCards = []skillCard{
	{"💻", "Frontend Development", []string{"React.js", "JavaScript", "HTML5", "CSS3", "Bootstrap"}},
	{"⚙️", "Backend Development", []string{"PHP", "Server Architecture", "API Development"}},
	{"🗄️", "Database Management", []string{"MySQL", "SQL", "Database Design"}},
	{"☁️", "Cloud & Tools", []string{"AWS Cloud Services", "GitHub", "UI/UX Design"}},
}

// AboutSection shares the profile fetch with the hero; the skills grid is
// fixed content.
func AboutSection(state section.State, p *profile.Profile, seen bool) g.Node {
	var bio g.Node
	if state.Ready() && p != nil {
		bio = P(Class("about-bio"), g.Text(p.Bio))
	} else {
		bio = loadingBlock("profile")
	}

	return Section(sectionAttrs("about", seen),
		H2(g.Text("About Me")),
		bio,
		Div(Class("grid skills"),
			g.Map(skillCards, func(c skillCard) g.Node {
				return Div(Class("card"),
					Span(Class("skill-icon"), g.Text(c.icon)),
					H3(g.Text(c.title)),
					Ul(g.Map(c.skills, func(s string) g.Node { return Li(g.Text(s)) })),
				)
			}),
		),
	)
}
