package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/site/section"
)

func ProjectsSection(state section.State, projects []*project.Project, seen bool) g.Node {
	var body g.Node
	switch {
	case !state.Ready():
		body = loadingBlock("projects")
	case len(projects) == 0:
		body = P(Class("empty"), g.Text("No projects yet."))
	default:
		body = Div(Class("grid projects"), g.Map(projects, projectCard))
	}

	return Section(sectionAttrs("projects", seen),
		H2(g.Text("Featured Projects")),
		body,
	)
}

func projectCard(p *project.Project) g.Node {
	var media g.Node
	if p.ImageURL != nil {
		media = Img(Src(*p.ImageURL), Alt(p.Title), Class("project-image"))
	} else {
		media = Div(Class("project-icon"), g.Text(p.Icon()))
	}

	return g.El("article", Class("card project-card"), g.Attr("data-project", p.ID),
		media,
		H3(g.Text(p.Title)),
		P(g.Text(p.Description)),
		Div(Class("tech-tags"),
			g.Map(p.Technologies, func(t string) g.Node {
				return Span(Class("tech-tag"), g.Text(t))
			}),
		),
		Div(Class("project-links"),
			g.If(p.GitHubURL != nil, externalLink(p.GitHubURL, "Code")),
			g.If(p.DemoURL != nil, externalLink(p.DemoURL, "Demo")),
		),
	)
}

// externalLink tolerates a nil target since g.If evaluates its node
// eagerly.
func externalLink(href *string, label string) g.Node {
	if href == nil {
		return nil
	}
	return A(Href(*href), Target("_blank"), Rel("noopener noreferrer"), Class("btn"), g.Text(label))
}
