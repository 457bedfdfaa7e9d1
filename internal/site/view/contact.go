package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/khoahotran/portfolio/internal/site/contact"
)

func ContactSection(form contact.View, seen bool) g.Node {
	var banner g.Node
	switch form.Status {
	case contact.SuccessDisplayed:
		banner = Div(Class("banner success"), Role("status"), g.Text(form.Banner))
	case contact.ErrorDisplayed:
		banner = Div(Class("banner error"), Role("alert"), g.Text(form.Banner))
	}

	f := form.Fields
	return Section(sectionAttrs("contact", seen),
		H2(g.Text("Get In Touch")),
		banner,
		Form(Method("post"), Action("/contact#contact"), Class("contact-form"),
			field("name", "Your Name", Input(Type("text"), ID("name"), Name("name"), Value(f.Name), Required())),
			field("email", "Your Email", Input(Type("email"), ID("email"), Name("email"), Value(f.Email), Required())),
			field("subject", "Subject", Input(Type("text"), ID("subject"), Name("subject"), Value(f.Subject), Required())),
			field("message", "Message", Textarea(ID("message"), Name("message"), Rows("5"), Required(), g.Text(f.Message))),
			Button(Type("submit"), Class("btn primary"), g.Text("Send Message")),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(Class("form-field"),
		g.El("label", g.Attr("for", id), g.Text(label)),
		control,
	)
}
