package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/modules/site"
)

// DataStarScript is the client bundle matching datastar-go v1.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// New returns the site's views.
func New() *site.Views {
	return &site.Views{
		Page:      Page,
		Form:      Form,
		ErrorPage: ErrorPage,
	}
}

const styles = `html{scroll-behavior:smooth;scroll-padding-top:70px}
.navbar.scrolled{box-shadow:0 2px 12px rgba(0,0,0,.15)}
.nav-menu{display:flex;gap:1.5rem;list-style:none}
@media (max-width:768px){.nav-menu{display:none}.nav-menu.active{display:flex;flex-direction:column}}
.fade-in,.dish-card,.testimonial-card{opacity:0;transform:translateY(20px);transition:opacity .6s ease,transform .6s ease}
.visible{opacity:1;transform:translateY(0)}
.form-group input.error,.form-group textarea.error,.form-group select.error{border-color:#e74c3c}
.error-message{color:#e74c3c;font-size:.85rem}
.success-message{display:none}
.success-message.show{display:block}`

type dish struct {
	name, description, price, image string
}

var dishes = []dish{
	{"Coq au Vin", "Chicken braised in red wine with mushrooms and pearl onions.", "$24", "/static/img/coq-au-vin.jpg"},
	{"Bouillabaisse", "Provençal fish stew with saffron and rouille.", "$28", "/static/img/bouillabaisse.jpg"},
	{"Tarte Tatin", "Caramelised upside-down apple tart with crème fraîche.", "$11", "/static/img/tarte-tatin.jpg"},
}

var testimonials = []struct{ quote, author string }{
	{"The best bistro experience outside of Paris.", "Marie L."},
	{"Warm service and a menu that changes with the seasons.", "Daniel K."},
}

// Page renders the full document. Known forms get their sections; any other
// form is rendered bare.
func Page(p site.PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		signals, err := templ.JSONString(p.Signals())
		if err != nil {
			return err
		}

		w := newWriter(ctx, out)
		w.raw("<!DOCTYPE html>")
		w.open("html", "lang", "en")
		w.raw("<head>")
		w.raw(`<meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.open("title")
		w.text("Bistro")
		w.close("title")
		w.open("script", "type", "module", "src", DataStarScript)
		w.close("script")
		w.open("style")
		w.raw(styles)
		w.close("style")
		w.raw("</head>")

		w.open("body", "data-signals", signals)
		w.component(navbar())
		w.component(hero())
		w.component(menuHighlights())

		for _, f := range p.Forms {
			switch f.ID {
			case site.ContactForm().ID:
				w.component(ContactForm(f))
			case site.BookingForm().ID:
				w.component(BookingForm(f))
			default:
				w.component(Form(f))
			}
		}

		w.component(reviews())
		w.open("footer", "class", "footer")
		w.text("© Bistro. All rights reserved.")
		w.close("footer")
		w.close("body")
		w.close("html")
		return w.err
	})
}

// navbar toggles the mobile menu and tracks the scroll offset. Clicking a link
// or anywhere outside closes the menu.
func navbar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("nav",
			"class", "navbar",
			"data-signals", "{menuOpen: false, scrolled: false}",
			"data-on-scroll__window__throttle.100ms", "$scrolled = window.scrollY > 100",
			"data-class", "{'scrolled': $scrolled}",
			"data-on-click__outside", "$menuOpen = false",
		)
		w.open("a", "href", "#home", "class", "logo")
		w.text("Bistro")
		w.close("a")
		w.open("button",
			"type", "button",
			"class", "menu-toggle",
			"aria-label", "Toggle menu",
			"data-on-click", "$menuOpen = !$menuOpen",
			"data-class", "{'active': $menuOpen}",
		)
		w.raw("<span></span><span></span><span></span>")
		w.close("button")
		w.open("ul", "class", "nav-menu", "data-class", "{'active': $menuOpen}")
		for _, link := range []struct{ href, label string }{
			{"#home", "Home"},
			{"#menu", "Menu"},
			{"#booking", "Reservations"},
			{"#contact", "Contact"},
		} {
			w.raw("<li>")
			w.open("a", "href", link.href, "data-on-click", "$menuOpen = false")
			w.text(link.label)
			w.close("a")
			w.raw("</li>")
		}
		w.close("ul")
		w.close("nav")
		return w.err
	})
}

func hero() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("header", "id", "home", "class", "hero")
		w.open("h1")
		w.text("Seasonal French Cooking")
		w.close("h1")
		w.open("p")
		w.text("A neighbourhood bistro serving classic dishes from local produce.")
		w.close("p")
		w.open("a", "href", "#booking", "class", "btn btn-primary")
		w.text("Book a Table")
		w.close("a")
		w.close("header")
		return w.err
	})
}

func menuHighlights() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("section", "id", "menu", "class", "menu")
		w.open("h2")
		w.text("Menu Highlights")
		w.close("h2")
		for _, d := range dishes {
			w.open("article", "class", "dish-card", "data-on-intersect__once", "el.classList.add('visible')")
			w.raw("<img")
			w.attr("src", d.image)
			w.attr("alt", d.name)
			w.attr("loading", "lazy")
			w.raw(">")
			w.open("h3")
			w.text(d.name)
			w.close("h3")
			w.open("p")
			w.text(d.description)
			w.close("p")
			w.open("span", "class", "price")
			w.text(d.price)
			w.close("span")
			w.close("article")
		}
		w.close("section")
		return w.err
	})
}

func reviews() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.open("section", "id", "testimonials", "class", "testimonials")
		for _, t := range testimonials {
			w.open("blockquote", "class", "testimonial-card", "data-on-intersect__once", "el.classList.add('visible')")
			w.text(t.quote)
			w.open("cite")
			w.text(t.author)
			w.close("cite")
			w.close("blockquote")
		}
		w.close("section")
		return w.err
	})
}

// ErrorPage renders a minimal error document.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw("<!DOCTYPE html>")
		w.open("html", "lang", "en")
		w.raw(`<head><meta charset="utf-8"><title>Error</title></head><body>`)
		w.open("main", "class", "error-page")
		w.open("h1")
		w.text(p.Message)
		w.close("h1")
		if p.RequestID != "" {
			w.open("p", "class", "request-id")
			w.text("Reference: " + p.RequestID)
			w.close("p")
		}
		w.open("a", "href", "/")
		w.text("Back to the homepage")
		w.close("a")
		w.close("main")
		w.raw("</body></html>")
		return w.err
	})
}
