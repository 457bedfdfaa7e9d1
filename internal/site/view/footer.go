package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/site/shell"
)

var footerSocial = []struct{ label, href string }{
	{"GitHub", "https://github.com/rk2281"},
	{"LinkedIn", "https://www.linkedin.com/in/rachitkapoor1/"},
	{"Email", "mailto:rachitkapoor2281@gmail.com"},
}

func FooterSection(p *profile.Profile, year int) g.Node {
	name := "Rachit Kapoor"
	if p != nil && p.Name != "" {
		name = p.Name
	}

	return Footer(Class("footer"),
		Div(Class("footer-links"),
			H3(g.Text("Quick Links")),
			Ul(g.Map(shell.SectionIDs, func(id string) g.Node {
				return Li(A(Href("#"+id), g.Text(navLabels[id])))
			})),
		),
		Div(Class("footer-social"),
			H3(g.Text("Connect")),
			g.Map(footerSocial, func(s struct{ label, href string }) g.Node {
				return A(Href(s.href), Target("_blank"), Rel("noopener noreferrer"), g.Text(s.label))
			}),
		),
		P(Class("copyright"), g.Textf("© %d %s. All rights reserved.", year, name)),
	)
}
