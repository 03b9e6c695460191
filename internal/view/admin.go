package view

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/brettarda/brett-dev/internal/analytics"
)

func adminShell(title string, body ...Node) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Class("dark"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("robots"), Content("noindex")),
				TitleEl(Text(title)),
				Link(Rel("stylesheet"), Href("/static/app.css")),
			),
			Body(Main(Class("container section stack"), Group(body))),
		),
	)
}

// AdminLogin is the sign-in form. errMsg is shown above it when set.
func AdminLogin(errMsg string) Node {
	return adminShell("Admin Login",
		H1(Text("Admin Login")),
		If(errMsg != "", P(Class("error"), Attr("role", "alert"), Text(errMsg))),
		Form(
			Method("post"),
			Action("/admin/login"),
			Class("card stack"),
			Label(For("username"), Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), Required()),
			Label(For("password"), Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Sign in")),
		),
	)
}

// AdminError is a minimal failure page.
func AdminError(msg string) Node {
	return adminShell("Admin Error",
		H1(Text("Something went wrong")),
		P(Class("muted"), Text(msg)),
		A(Href("/admin/dashboard"), Text("Back to dashboard")),
	)
}

// AdminDashboard shows visit, theme and navigation figures. Visitors appear
// only by their hashed address.
func AdminDashboard(s *analytics.Stats) Node {
	if s == nil {
		s = &analytics.Stats{}
	}
	return adminShell("Admin Dashboard",
		Div(
			Class("card-header split"),
			H1(Text("Dashboard")),
			Div(
				Class("card-actions"),
				A(Href("/admin/export/stats"), Class("btn btn-outline"), Text("Export")),
				Form(Method("post"), Action("/admin/privacy/cleanup"),
					Button(Type("submit"), Class("btn btn-outline"), Text("Run cleanup")),
				),
				A(Href("/admin/logout"), Class("btn btn-ghost"), Text("Log out")),
			),
		),
		Div(
			Class("grid grid-3"),
			statCard("Total visits", s.TotalVisitors),
			statCard("Unique visitors", s.UniqueVisitors),
			statCard("Today", s.VisitorsToday),
			statCard("This week", s.VisitorsThisWeek),
		),
		Div(
			Class("grid grid-2"),
			countTable("Theme choices", "Preference", s.ThemeChoices),
			countTable("Top sections", "Section", s.TopSections),
		),
		Div(
			Class("card"),
			H2(Class("card-title"), Text("Recent visitors")),
			Table(
				THead(Tr(Th(Text("Visitor")), Th(Text("Path")), Th(Text("User agent")), Th(Text("When (UTC)")))),
				TBody(Map(s.RecentVisitors, func(v analytics.VisitorMetric) Node {
					return Tr(
						Td(Code(Text(v.HashedIP))),
						Td(Text(v.Path)),
						Td(Class("muted small"), Text(v.UserAgent)),
						Td(Text(v.Timestamp.Format("2006-01-02 15:04"))),
					)
				})),
			),
		),
	)
}

func statCard(label string, n int64) Node {
	return Div(
		Class("card"),
		Attr("data-key", label),
		P(Class("muted small"), Text(label)),
		P(Class("display"), Text(strconv.FormatInt(n, 10))),
	)
}

func countTable(title, column string, rows []analytics.Count) Node {
	return Div(
		Class("card"),
		H2(Class("card-title"), Text(title)),
		If(len(rows) == 0, P(Class("muted"), Text("No data yet"))),
		If(len(rows) > 0, Table(
			THead(Tr(Th(Text(column)), Th(Text("Count")))),
			TBody(Map(rows, func(c analytics.Count) Node {
				return Tr(Attr("data-key", c.Label), Td(Text(c.Label)), Td(Text(strconv.FormatInt(c.Count, 10))))
			})),
		)),
	)
}
