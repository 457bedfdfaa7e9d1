// Package view renders the single page with gomponents.
package view

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/site/contact"
	"github.com/khoahotran/portfolio/internal/site/section"
	"github.com/khoahotran/portfolio/internal/site/shell"
)

var navLabels = map[string]string{
	"home":         "Home",
	"about":        "About",
	"projects":     "Projects",
	"technologies": "Technologies",
	"contact":      "Contact",
}

// Document renders the whole page for a composed shell page and the
// current contact form view.
func Document(page *shell.Page, form contact.View) g.Node {
	cfg := page.Config
	profileState, p := page.Profile.Snapshot()
	projectsState, projects := page.Projects.Snapshot()
	techState, techs := page.Technologies.Snapshot()

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.If(cfg.Theme.Dark, Class(cfg.Theme.RootClass())),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("color-scheme"), Content("light dark")),
				TitleEl(g.Text(documentTitle(p))),
				StyleEl(g.Raw(stylesheet)),
			),
			Body(
				g.If(cfg.Splash, splashOverlay(cfg)),
				navBar(cfg),
				Main(
					HeroSection(profileState, p, cfg.Seen("home")),
					AboutSection(profileState, p, cfg.Seen("about")),
					ProjectsSection(projectsState, projects, cfg.Seen("projects")),
					TechnologiesSection(techState, techs, cfg.Category, cfg.Seen("technologies")),
					ContactSection(form, cfg.Seen("contact")),
				),
				FooterSection(p, cfg.Year),
				Script(g.Raw(observerScript)),
			),
		),
	})
}

func documentTitle(p *profile.Profile) string {
	if p == nil || p.Name == "" {
		return "Portfolio"
	}
	return p.Name + " | Portfolio"
}

// sectionAttrs marks a section for the entrance animation until the
// visitor has seen it once.
func sectionAttrs(id string, seen bool) g.Node {
	class := "section"
	if !seen {
		class += " entrance"
	}
	return g.Group([]g.Node{ID(id), Class(class), g.Attr("data-section", id)})
}

func splashOverlay(cfg shell.Config) g.Node {
	return Div(ID("splash"), Class("splash"),
		g.Attr("data-delay", strconv.FormatInt(cfg.SplashDelay.Milliseconds(), 10)),
		Div(Class("spinner")),
		P(g.Text("Loading Portfolio...")),
		Script(g.Raw(splashScript)),
	)
}

func navBar(cfg shell.Config) g.Node {
	icon := "🌙"
	if cfg.Theme.Dark {
		icon = "☀️"
	}
	links := make([]g.Node, 0, len(shell.SectionIDs))
	for _, id := range shell.SectionIDs {
		links = append(links, Li(A(Href("#"+id), g.Text(navLabels[id]))))
	}
	return Nav(Class("navbar"),
		Ul(Class("nav-links"), g.Group(links)),
		Form(Method("post"), Action("/theme/toggle"), Class("theme-toggle"),
			Button(Type("submit"), Aria("label", "Toggle dark mode"), g.Text(icon)),
		),
	)
}

const splashScript = `(function(){var s=document.getElementById('splash');if(!s)return;setTimeout(function(){s.remove();},parseInt(s.dataset.delay,10)||0);})();`

// observerScript reports each section once it is at least
// section.EntranceThreshold visible, the same bar the server applies.
var observerScript = strings.ReplaceAll(`(function(){
if(!('IntersectionObserver' in window))return;
var io=new IntersectionObserver(function(entries){
entries.forEach(function(e){
if(!e.isIntersecting||e.intersectionRatio<{{threshold}})return;
e.target.classList.add('visible');
io.unobserve(e.target);
fetch('/visibility/'+e.target.dataset.section,{method:'POST',headers:{'Content-Type':'application/x-www-form-urlencoded'},body:'ratio='+e.intersectionRatio});
});
},{threshold:{{threshold}}});
document.querySelectorAll('.section.entrance').forEach(function(el){io.observe(el);});
})();`, "{{threshold}}", strconv.FormatFloat(section.EntranceThreshold, 'f', -1, 64))

const stylesheet = `
:root{--bg:#ffffff;--fg:#1f2937;--accent:#3b82f6;--card:#f3f4f6}
html.dark{--bg:#111827;--fg:#f9fafb;--card:#1f2937}
body{margin:0;font-family:system-ui,sans-serif;background:var(--bg);color:var(--fg)}
.navbar{position:sticky;top:0;display:flex;justify-content:space-between;padding:1rem;background:var(--bg)}
.nav-links{display:flex;gap:1rem;list-style:none;margin:0;padding:0}
.section{padding:4rem 1.5rem;max-width:72rem;margin:0 auto}
.section.entrance{opacity:0;transform:translateY(2rem);transition:all .6s ease}
.section.entrance.visible{opacity:1;transform:none}
.card{background:var(--card);border-radius:.75rem;padding:1.5rem}
.grid{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr))}
.tech-tag{display:inline-block;padding:.2rem .6rem;margin:.2rem;border-radius:999px;background:var(--accent);color:#fff;font-size:.8rem}
.tab{padding:.4rem .9rem;border-radius:999px;text-decoration:none;color:inherit}
.tab.active{background:var(--accent);color:#fff}
.banner{padding:1rem;border-radius:.5rem;margin-bottom:1rem}
.banner.success{background:#dcfce7;color:#166534}
.banner.error{background:#fee2e2;color:#991b1b}
.splash{position:fixed;inset:0;display:flex;flex-direction:column;align-items:center;justify-content:center;background:var(--bg);z-index:50}
.level-expert{color:#16a34a}.level-advanced{color:#2563eb}.level-intermediate{color:#d97706}.level-beginner{color:#6b7280}
`
