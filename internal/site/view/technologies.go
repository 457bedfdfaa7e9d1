package view

import (
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/internal/site/section"
)

func levelClass(level string) string {
	switch level {
	case technology.LevelExpert, technology.LevelAdvanced, technology.LevelIntermediate, technology.LevelBeginner:
		return "level-" + strings.ToLower(level)
	}
	return "level-other"
}

// TechnologiesSection renders the filter tabs, the filtered grid and the
// summary counts. Tabs are plain links so the filter works without script.
func TechnologiesSection(state section.State, techs []technology.Technology, category string, seen bool) g.Node {
	if !state.Ready() {
		return Section(sectionAttrs("technologies", seen),
			H2(g.Text("Technologies & Skills")),
			loadingBlock("technologies"),
		)
	}
	if category == "" {
		category = technology.AllCategories
	}

	tabs := append([]string{technology.AllCategories}, technology.Categories(techs)...)
	shown := technology.Filter(techs, category)
	stats := technology.Summarize(techs)

	return Section(sectionAttrs("technologies", seen),
		H2(g.Text("Technologies & Skills")),
		Div(Class("filter-tabs"),
			g.Map(tabs, func(c string) g.Node {
				class := "tab"
				if c == category {
					class += " active"
				}
				return A(Href("/?category="+url.QueryEscape(c)+"#technologies"), Class(class), g.Text(c))
			}),
		),
		Div(Class("grid technologies"),
			g.Map(shown, func(t technology.Technology) g.Node {
				return Div(Class("card tech-card"),
					H3(g.Text(t.Name)),
					Span(Class("tech-category"), g.Text(t.Category)),
					Span(Class("tech-level "+levelClass(t.Level)), g.Text(t.Level)),
				)
			}),
		),
		Div(Class("tech-stats"),
			statBlock(stats.Total, "Technologies"),
			statBlock(stats.Proficient, "Proficient"),
			statBlock(stats.Categories, "Categories"),
		),
	)
}

func statBlock(n int, label string) g.Node {
	return Div(Class("stat"),
		Span(Class("stat-value"), g.Textf("%d+", n)),
		Span(Class("stat-label"), g.Text(label)),
	)
}
