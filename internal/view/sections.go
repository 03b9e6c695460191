package view

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/brettarda/brett-dev/internal/content"
)

func sectionHeading(lead, accent, blurb string) Node {
	return Div(
		Class("section-heading"),
		fadeUp.attrs(),
		H2(Text(lead+" "), Span(Class("gradient-text"), Text(accent))),
		If(blurb != "", P(Class("muted lead"), Text(blurb))),
	)
}

// narrative renders author Markdown; if conversion fails the source is shown
// as escaped text.
func narrative(src, class string) Node {
	html, ok := content.Markdown(src)
	if !ok {
		return P(Class(class), Text(src))
	}
	return Div(Class(class), Raw(html))
}

// AboutSection is the hero: role badge, name, headline, bio and calls to
// action.
func AboutSection(p content.Profile, static bool) Node {
	projectsHref, connectHref := "/nav/projects", "/nav/connect"
	if static {
		projectsHref, connectHref = "#projects", "#connect"
	}

	return Section(
		ID("about"),
		Class("section hero"),
		Div(
			Class("hero-backdrop"),
			Attr("aria-hidden", "true"),
			Div(Class("orb orb-primary")),
			Div(Class("orb orb-accent")),
			icon("terminal", "float float-1"),
			icon("code", "float float-2"),
			icon("layers", "float float-3"),
		),
		Div(
			Class("container narrow center"),
			If(p.Role != "", Div(
				Class("pill"),
				onMount(0),
				icon("sparkles", "icon"),
				Span(Text(p.Role)),
			)),
			H1(
				Class("display"),
				onMount(0.1),
				Text("Hi, I'm "),
				Span(Class("gradient-text"), Text(p.ShortName)),
			),
			If(p.Headline != "" || p.Institution != "", P(
				Class("subtitle"),
				onMount(0.2),
				Text(p.Headline+" "),
				Span(Class("strong"), Text(p.Institution)),
			)),
			Div(onMount(0.3), narrative(p.Bio, "bio muted")),
			Div(
				Class("actions"),
				onMount(0.4),
				A(Href(projectsHref), Class("btn btn-primary btn-lg"), Attr("data-section", "projects"), Text("View My Projects")),
				A(Href(connectHref), Class("btn btn-outline btn-lg"), Attr("data-section", "connect"), Text("Get In Touch")),
			),
			Div(
				Class("scroll-indicator"),
				Attr("aria-hidden", "true"),
				Attr("data-reveal", "mount"),
				Attr("data-reveal-delay", "0.8"),
				Span(Text("Scroll")),
				Div(Class("scroll-mouse"), Div(Class("scroll-dot"))),
			),
		),
	)
}

// SkillsSection renders one card per category; categories and labels are
// keyed by their titles.
func SkillsSection(categories []content.SkillCategory) Node {
	return Section(
		ID("skills"),
		Class("section section-alt"),
		Div(
			Class("container"),
			sectionHeading("Skills &", "Technologies", "A comprehensive toolkit for building modern, scalable applications"),
			Div(
				Class("grid grid-3"),
				stagger(0.1),
				Map(categories, func(c content.SkillCategory) Node {
					return Div(
						Class("card"),
						Attr("data-key", c.Title),
						Div(
							Class("card-header"),
							Span(Class("card-icon"), icon(c.Icon, "icon")),
							H3(Class("card-title"), Text(c.Title)),
						),
						Div(
							Class("badges"),
							Map(c.Skills, func(s string) Node {
								return Span(Class("badge badge-outline"), Attr("data-key", s), Text(s))
							}),
						),
					)
				}),
			),
		),
	)
}

// ProjectsSection renders project cards. Repository and demo controls appear
// only when their links are set.
func ProjectsSection(projects []content.Project, profileURL string) Node {
	return Section(
		ID("projects"),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading("Featured", "Projects", "Real-world solutions showcasing full-stack development expertise"),
			Div(
				Class("grid grid-2"),
				stagger(0.15),
				Map(projects, projectCard),
			),
			If(profileURL != "", Div(
				Class("center more"),
				fadeUpLate.attrs(),
				externalLink(profileURL,
					Class("link-lg"),
					icon(content.IconGithub, "icon"),
					Text("View more on GitHub"),
				),
			)),
		),
	)
}

func projectCard(p content.Project) Node {
	return Div(
		Class("card project"),
		Attr("data-key", p.Title),
		Div(
			Class("card-header split"),
			Div(
				H3(Class("card-title"), Text(p.Title)),
				If(p.Subtitle != "", P(Class("muted small"), Text(p.Subtitle))),
			),
			Div(
				Class("card-actions"),
				If(p.GitHub != "", externalLink(p.GitHub,
					Class("btn btn-ghost btn-icon-only"),
					Attr("aria-label", "View on GitHub"),
					icon(content.IconGithub, "icon"),
				)),
				If(p.Demo != "", externalLink(p.Demo,
					Class("btn btn-ghost btn-icon-only"),
					Attr("aria-label", "View live demo"),
					icon(content.IconExternalLink, "icon"),
				)),
			),
		),
		Div(
			Class("badges"),
			Map(p.TechStack, func(tech string) Node {
				return Span(Class("badge"), Attr("data-key", tech), Text(tech))
			}),
		),
		Div(
			Class("card-body stack"),
			projectNarrative("The Challenge", p.Challenge),
			projectNarrative("The Solution", p.Solution),
			projectNarrative("Technical Implementation", p.Implementation),
		),
	)
}

func projectNarrative(heading, body string) Node {
	if body == "" {
		return nil
	}
	return Div(
		H4(Class("eyebrow"), Text(heading)),
		narrative(body, "muted small"),
	)
}

// ConnectSection renders contact cards. Entries without a link are plain
// text; links follow the isolation policy.
func ConnectSection(contacts []content.Contact, email string) Node {
	return Section(
		ID("connect"),
		Class("section section-alt"),
		Div(
			Class("container narrow"),
			sectionHeading("Let's", "Connect", "I'm always open to discussing new projects, opportunities, and ideas. Feel free to reach out!"),
			Div(
				Class("grid grid-2"),
				stagger(0.1),
				Map(contacts, contactCard),
			),
			If(email != "", Div(
				Class("center cta"),
				fadeUpLate.attrs(),
				P(Class("muted"), Text("Interested in working together? Let's build something amazing!")),
				externalLink("mailto:"+email,
					Class("btn btn-primary btn-lg"),
					icon(content.IconMail, "btn-icon"),
					Text("Send me an email"),
				),
			)),
		),
	)
}

func contactCard(c content.Contact) Node {
	var value Node
	if c.HasLink() {
		value = externalLink(c.Link, Class("contact-value link"), Text(c.Value))
	} else {
		value = P(Class("contact-value"), Text(c.Value))
	}

	return Div(
		Class("card contact"),
		Attr("data-key", c.Label),
		Span(Class("contact-icon"), icon(c.Icon, "icon")),
		Div(
			Class("contact-text"),
			P(Class("muted small"), Text(c.Label)),
			value,
		),
	)
}

// SiteFooter closes the page with the brand and a copyright line.
func SiteFooter(p content.Profile, year int, static bool) Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container center stack"),
			fadeUp.attrs(),
			logo(p.Brand, "logo logo-sm", static),
			Div(Class("divider")),
			P(Class("muted small"), Text("© "+yearText(year)+" "+p.FullName)),
		),
	)
}
