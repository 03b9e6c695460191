package view

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/nav"
	"github.com/brettarda/brett-dev/internal/theme"
)

const (
	headerBase     = "site-header"
	headerScrolled = "site-header is-scrolled"
)

// SiteHeader renders the fixed header: logo, section links, theme toggle,
// résumé download and the mobile menu.
func SiteHeader(site *content.Site, state HeaderState, mode theme.Mode, static bool) Node {
	class := headerBase
	if state.Scrolled {
		class = headerScrolled
	}
	items := nav.Items()

	return Header(
		Class(class),
		ID("top"),
		Attr("data-scroll-threshold", strconv.Itoa(nav.ScrollThreshold)),
		Nav(
			Class("nav container"),
			Attr("aria-label", "Primary"),
			logo(site.Profile.Brand, "logo", static),
			Div(
				Class("nav-desktop"),
				onMount(0.2),
				Map(items, func(it nav.Item) Node {
					return navLink(it, "nav-link", static)
				}),
				ThemeToggle(mode),
				resumeButton(site.Resume, "btn btn-primary"),
			),
			Div(
				Class("nav-mobile-controls"),
				ThemeToggle(mode),
				menuButton(state.MenuOpen, static),
			),
		),
		mobileMenu(items, site.Resume, state.MenuOpen, static),
	)
}

func logo(brand, class string, static bool) Node {
	href := "/home"
	if static {
		href = "#top"
	}
	return A(
		Href(href),
		Class(class),
		Attr("data-nav-home", ""),
		onMount(0),
		icon(content.IconCode, "logo-icon"),
		Span(Class("logo-text gradient-text"), Text(brand)),
	)
}

func navLink(it nav.Item, class string, static bool) Node {
	return A(
		Href(sectionHref(it, static)),
		Class(class),
		Attr("data-key", it.Name),
		Attr("data-section", it.ID()),
		Text(it.Name),
	)
}

func resumeButton(r content.Resume, class string) Node {
	return A(
		Href(r.Href),
		Attr("download", r.DownloadName),
		Class(class),
		icon(content.IconDownload, "btn-icon"),
		Text("Get Resume"),
	)
}

// menuButton works without script by linking to the opposite menu state.
// The script toggles the menu in place instead.
func menuButton(open, static bool) Node {
	href := "/?menu=open"
	if open {
		href = "/"
	}
	if static {
		href = "#mobile-menu"
	}
	return A(
		Href(href),
		Class("btn btn-ghost btn-icon-only menu-toggle"),
		Attr("role", "button"),
		Attr("aria-label", "Toggle menu"),
		Attr("aria-expanded", strconv.FormatBool(open)),
		Attr("aria-controls", "mobile-menu"),
		Attr("data-menu-toggle", ""),
		icon("menu", "icon icon-menu"),
		icon("x", "icon icon-close"),
	)
}

// mobileMenu is always in the document so the script can open it in place;
// it is hidden while the menu is closed.
func mobileMenu(items []nav.Item, r content.Resume, open, static bool) Node {
	return Div(
		ID("mobile-menu"),
		Class("nav-mobile-menu"),
		If(!open, Attr("hidden")),
		Attr("data-reveal", "mount"),
		Attr("data-reveal-duration", "0.3"),
		Div(
			Class("container stack"),
			Map(items, func(it nav.Item) Node {
				return navLink(it, "nav-link nav-link-block", static)
			}),
			resumeButton(r, "btn btn-primary btn-block"),
		),
	)
}

// ThemeToggle flips between light and dark. It posts to the server so it
// works without script; the embedded script upgrades it to an in-place swap.
// Both glyphs are rendered and the root class picks one, so a theme applied
// before paint shows the right glyph.
func ThemeToggle(resolved theme.Mode) Node {
	next := theme.Opposite(resolved)
	return Form(
		Method("post"),
		Action("/theme/toggle"),
		Class("theme-toggle"),
		Attr("data-theme-toggle", ""),
		Button(
			Type("submit"),
			Class("btn btn-ghost btn-icon-only"),
			Attr("aria-label", "Switch to "+string(next)+" mode"),
			Attr("data-next-theme", string(next)),
			Span(
				Class("theme-glyph"),
				icon("sun", "icon icon-sun"),
				icon("moon", "icon icon-moon"),
			),
		),
	)
}
