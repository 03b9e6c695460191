package content

// Default returns the content compiled into the binary. Each call returns a
// fresh copy.
func Default() *Site {
	return &Site{
		Profile: Profile{
			Brand:       "Brett.dev",
			FullName:    "Brett Westley A. Arda",
			ShortName:   "Brett Westley",
			Role:        "Full Stack Developer",
			Headline:    "4th Year BSIT Student at",
			Institution: "Cebu Institute of Technology–University",
			Bio: `Aspiring to be in the IT field with a passion for building modern,
scalable web applications. I love turning complex problems into
elegant solutions through clean code and thoughtful design.`,
			Email:     "your.email@example.com",
			GitHubURL: "https://github.com/yourusername",
		},
		Resume: Resume{
			Href:         "/Resume-Arda_BrettWestley 2025.pdf",
			DownloadName: "Resume-Arda_BrettWestley-2025.pdf",
		},
		Skills: []SkillCategory{
			{Title: "Languages", Icon: IconCode, Skills: []string{"Go", "TypeScript", "JavaScript", "Java", "Python", "SQL"}},
			{Title: "Frontend", Icon: IconLayout, Skills: []string{"React", "HTML", "CSS", "Tailwind CSS"}},
			{Title: "Backend", Icon: IconServer, Skills: []string{"Gin", "Node.js", "Express", "Spring Boot"}},
			{Title: "Databases", Icon: IconDatabase, Skills: []string{"PostgreSQL", "MySQL", "SQLite", "Firebase"}},
			{Title: "Cloud & DevOps", Icon: IconCloud, Skills: []string{"Docker", "GitHub Actions", "Linux"}},
			{Title: "Tools", Icon: IconWrench, Skills: []string{"Git", "VS Code", "Figma", "Postman"}},
		},
		Projects: []Project{
			{
				Title:          "Campus Event Hub",
				Subtitle:       "A single place for student organizations to publish and manage events",
				Challenge:      "Event announcements were scattered across group chats and pages, so students **missed deadlines** and organizers could not gauge turnout.",
				Solution:       "A shared calendar with RSVP tracking and reminders, so organizers publish once and students subscribe to what they care about.",
				Implementation: "A Go API backed by PostgreSQL, a React front end, and scheduled reminder jobs. Role-based access keeps organizer tools separate from student views.",
				TechStack:      []string{"Go", "PostgreSQL", "React", "Docker"},
				GitHub:         "https://github.com/yourusername/campus-event-hub",
			},
			{
				Title:          "Portfolio Server",
				Subtitle:       "This site: a server-rendered portfolio with a persistent theme",
				Challenge:      "Keep a personal site fast and readable without shipping a heavy client bundle.",
				Solution:       "Render every section on the server and enhance scrolling and theme switching with a few lines of script.",
				Implementation: "Gin serves gomponents-rendered pages. The theme preference lives in a cookie, and privacy-conscious visit counts live in SQLite.",
				TechStack:      []string{"Go", "Gin", "gomponents", "SQLite"},
				GitHub:         "https://github.com/yourusername/brett-dev",
				Demo:           "https://brett.dev",
			},
		},
		Contacts: []Contact{
			{Icon: IconMail, Label: "Email", Value: "your.email@example.com", Link: "mailto:your.email@example.com"},
			{Icon: IconMapPin, Label: "Location", Value: "Cebu City, Philippines"},
			{Icon: IconGithub, Label: "GitHub", Value: "github.com/yourusername", Link: "https://github.com/yourusername"},
			{Icon: IconLinkedin, Label: "LinkedIn", Value: "Brett Westley A. Arda", Link: "https://linkedin.com/in/yourusername"},
		},
	}
}
