// Package content holds the author-supplied data the page renders: profile,
// skills, projects and contact entries.
package content

import "strings"

// Icon names one of the glyphs the page renders inline.
type Icon string

const (
	IconMail         Icon = "mail"
	IconMapPin       Icon = "map-pin"
	IconGithub       Icon = "github"
	IconLinkedin     Icon = "linkedin"
	IconTwitter      Icon = "twitter"
	IconCode         Icon = "code-2"
	IconLayout       Icon = "layout"
	IconServer       Icon = "server"
	IconDatabase     Icon = "database"
	IconCloud        Icon = "cloud"
	IconWrench       Icon = "wrench"
	IconExternalLink Icon = "external-link"
	IconDownload     Icon = "download"
)

// Profile is the About/Header/Footer copy.
type Profile struct {
	Brand       string `yaml:"brand" validate:"required"`
	FullName    string `yaml:"full_name" validate:"required"`
	ShortName   string `yaml:"short_name" validate:"required"`
	Role        string `yaml:"role"`
	Headline    string `yaml:"headline"`
	Institution string `yaml:"institution"`
	Bio         string `yaml:"bio"`
	Email       string `yaml:"email" validate:"omitempty,email"`
	GitHubURL   string `yaml:"github_url" validate:"omitempty,url"`
}

// Resume is the downloadable résumé.
type Resume struct {
	Href         string `yaml:"href" validate:"required,startswith=/"`
	DownloadName string `yaml:"download_name" validate:"required"`
}

// Contact is one entry in the Connect section. An empty Link renders as
// plain text.
type Contact struct {
	Icon  Icon   `yaml:"icon" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Link  string `yaml:"link,omitempty" validate:"omitempty,url"`
}

// HasLink reports whether the entry is activatable.
func (c Contact) HasLink() bool { return strings.TrimSpace(c.Link) != "" }

// Project is one featured project card.
type Project struct {
	Title          string   `yaml:"title" validate:"required"`
	Subtitle       string   `yaml:"subtitle"`
	Challenge      string   `yaml:"challenge"`
	Solution       string   `yaml:"solution"`
	Implementation string   `yaml:"implementation"`
	TechStack      []string `yaml:"tech_stack" validate:"dive,required"`
	GitHub         string   `yaml:"github,omitempty" validate:"omitempty,url"`
	Demo           string   `yaml:"demo,omitempty" validate:"omitempty,url"`
}

// SkillCategory groups skill labels under a heading.
type SkillCategory struct {
	Title  string   `yaml:"title" validate:"required"`
	Icon   Icon     `yaml:"icon" validate:"required"`
	Skills []string `yaml:"skills" validate:"dive,required"`
}

// Site is everything the page renders.
type Site struct {
	Profile  Profile         `yaml:"profile"`
	Resume   Resume          `yaml:"resume"`
	Skills   []SkillCategory `yaml:"skills" validate:"dive"`
	Projects []Project       `yaml:"projects" validate:"dive"`
	Contacts []Contact       `yaml:"contacts" validate:"dive"`
}

// OpensNewContext reports whether href must open in a new browsing context
// with opener and referrer isolation. Mail links stay in the current context.
func OpensNewContext(href string) bool {
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "mailto:")
}

// ExternalRel is the rel value paired with target=_blank.
const ExternalRel = "noopener noreferrer"
