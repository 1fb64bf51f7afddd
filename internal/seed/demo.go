package seed

import (
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
)

// Demo builds the built-in demonstration portfolio. It ships with every
// deployment so the site renders before any content is authored.
func Demo() (*portfolio.Portfolio, error) {
	profile := portfolio.Profile{
		Name:     "Demo User",
		Title:    "Full Stack Developer",
		Greeting: "Welcome! This is a",
		Description: "This is a demo portfolio showcasing the multi-version portfolio system. " +
			"Each section demonstrates how data flows from the portfolio service to the site. " +
			"Switch versions using the URL parameter: ?version=demo",
		AboutParagraphs: []string{
			"This is the first paragraph of the About section. It typically contains a brief introduction about the person, their background, and career highlights.",
			"The second paragraph usually covers technical expertise, specializations, and the types of projects or industries the person has worked in.",
			"The third paragraph often includes personal interests, work philosophy, or what drives the person professionally.",
		},
		PhotoURL: "https://via.placeholder.com/400x400?text=Demo+Photo",
		Stats: []portfolio.ProfileStat{
			{Value: "5+", Label: "Years Experience"},
			{Value: "50+", Label: "Projects Completed", Link: "https://example.com/projects"},
			{Value: "MSc", Label: "Computer Science"},
		},
	}

	skills := []portfolio.SkillCategory{
		{Category: "Frontend Development", Skills: []portfolio.Skill{
			{Name: "React", Level: 85},
			{Name: "Vue.js", Level: 75},
			{Name: "TypeScript", Level: 80},
			{Name: "CSS/Sass", Level: 90},
		}},
		{Category: "Backend Development", Skills: []portfolio.Skill{
			{Name: "Node.js", Level: 80},
			{Name: "Python", Level: 75},
			{Name: "PostgreSQL", Level: 70},
			{Name: "REST APIs", Level: 85},
		}},
		{Category: "DevOps & Tools", Skills: []portfolio.Skill{
			{Name: "Docker", Level: 70},
			{Name: "Git", Level: 90},
			{Name: "CI/CD", Level: 65},
			{Name: "AWS", Level: 60},
		}},
	}

	github := "https://github.com/demo/ecommerce"
	tasksGithub := "https://github.com/demo/tasks"
	projects := []portfolio.Project{
		{
			ID:    "demo-1",
			Title: "E-Commerce Platform",
			Description: "A full-featured online store with product catalog, shopping cart, " +
				"user authentication, and payment integration. Demonstrates REST API " +
				"design and state management patterns.",
			Tags:      []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			LiveURL:   "https://example.com/ecommerce",
			GithubURL: &github,
		},
		{
			ID:    "demo-2",
			Title: "Task Management App",
			Description: "Collaborative task management with real-time updates, drag-and-drop " +
				"interface, and team workspaces. Shows WebSocket implementation and " +
				"optimistic UI updates.",
			Tags:      []string{"Vue.js", "Firebase", "TypeScript"},
			LiveURL:   "https://example.com/tasks",
			GithubURL: &tasksGithub,
		},
		{
			ID:    "demo-3",
			Title: "Analytics Dashboard",
			Description: "Data visualization dashboard with interactive charts, filters, and " +
				"export functionality. This project has no source link to show the " +
				"optional repository field.",
			Tags:    []string{"React", "D3.js", "Python", "FastAPI"},
			LiveURL: "https://example.com/analytics",
		},
	}

	contact := portfolio.NewContactInfo("demo@example.com", "San Francisco, CA", []portfolio.SocialLink{
		portfolio.NewSocialLink(portfolio.PlatformGithub, "https://github.com/demo-user", "GitHub"),
		portfolio.NewSocialLink(portfolio.PlatformLinkedin, "https://linkedin.com/in/demo-user", "LinkedIn"),
		portfolio.NewSocialLink(portfolio.PlatformWhatsapp, "https://wa.me/1234567890", "WhatsApp"),
	}, nil)

	return portfolio.New("portfolio-demo", "demo", profile, skills, projects, contact)
}

// Register installs the demo portfolio as the registry default.
func Register(registry *portfolio.Registry) error {
	demo, err := Demo()
	if err != nil {
		return err
	}
	registry.Register("demo", demo)
	return registry.SetDefault("demo")
}
