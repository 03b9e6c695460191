// Package view renders the portfolio page with gomponents.
package view

import (
	"io"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/nav"
	"github.com/brettarda/brett-dev/internal/theme"
)

// HeaderState is the controller snapshot the header renders from.
type HeaderState struct {
	Scrolled bool
	MenuOpen bool
}

// PageData is everything the root composition needs.
type PageData struct {
	Site       *content.Site
	Root       *theme.Element
	Resolved   theme.Mode
	Preference theme.Preference
	Header     HeaderState
	Year       int
	// ThemeKey names the cookie the script writes on an exported page.
	ThemeKey string
	// Static switches links to plain fragments for an exported page with no
	// server behind it.
	Static bool
}

// Page renders the whole document. The <html> class and data-theme come from
// the theme root element, which only the theme store writes.
func Page(d PageData) Node {
	site := d.Site
	if site == nil {
		site = &content.Site{}
	}
	key := d.ThemeKey
	if key == "" {
		key = theme.DefaultStorageKey
	}
	mode, class := d.Resolved, string(d.Resolved)
	if d.Root != nil && d.Root.Mode() != "" {
		mode, class = d.Root.Mode(), d.Root.Class()
	}

	return Doctype(
		HTML(
			Lang("en"),
			Class(class),
			Attr("data-theme", string(mode)),
			Attr("data-theme-preference", string(d.Preference)),
			Attr("data-theme-key", key),
			If(d.Static, Attr("data-static", "true")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("color-scheme"), Content("light dark")),
				Meta(Name("description"), Content(site.Profile.FullName+" - "+site.Profile.Role)),
				TitleEl(Text(site.Profile.ShortName+" | "+site.Profile.Role)),
				Link(Rel("icon"), Href("data:,")),
				Script(Raw(themeInitScript)),
				Link(Rel("stylesheet"), Href(assetHref(d.Static, "app.css"))),
				Script(Src(assetHref(d.Static, "app.js")), Attr("defer")),
			),
			Body(
				Class("min-h-screen"),
				SiteHeader(site, d.Header, mode, d.Static),
				Main(
					AboutSection(site.Profile, d.Static),
					SkillsSection(site.Skills),
					ProjectsSection(site.Projects, site.Profile.GitHubURL),
					ConnectSection(site.Contacts, site.Profile.Email),
				),
				SiteFooter(site.Profile, d.Year, d.Static),
			),
		),
	)
}

// Render writes the page.
func Render(w io.Writer, d PageData) error {
	return Page(d).Render(w)
}

func assetHref(static bool, name string) string {
	if static {
		return "static/" + name
	}
	return "/static/" + name
}

// sectionHref is where a header link points: the server-side navigation
// endpoint, or a bare fragment on an exported page.
func sectionHref(item nav.Item, static bool) string {
	if static {
		return item.Href
	}
	return "/nav/" + item.ID()
}

// externalLink renders an anchor that honours the isolation policy: mail
// links stay in the current context, everything else opens a new one with
// no opener and no referrer.
func externalLink(href string, children ...Node) Node {
	attrs := []Node{Href(href)}
	if content.OpensNewContext(href) {
		attrs = append(attrs, Attr("target", "_blank"), Rel(content.ExternalRel))
	}
	return A(append(attrs, children...)...)
}

func yearText(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}
