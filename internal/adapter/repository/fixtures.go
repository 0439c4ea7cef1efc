package repository

import (
	"time"

	"portfolio-site/internal/domain"
)

// Seed data. Every call builds fresh values so callers can never reach the
// canonical copies.

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureProfile() domain.PersonalInfo {
	return domain.PersonalInfo{
		Name:     "Alex Chen",
		Title:    "Full-Stack Engineer",
		Bio:      "I build modern web products end to end, mostly with Go, React and PostgreSQL.",
		Avatar:   "/avatar.jpg",
		Email:    "alex@example.com",
		GitHub:   "https://github.com/alexchen",
		LinkedIn: "https://linkedin.com/in/alexchen",
		Location: "Beijing, China",
	}
}

func fixtureSkills() []domain.Skill {
	return []domain.Skill{
		{Name: "React", Level: domain.LevelAdvanced, Category: domain.CategoryFrontend},
		{Name: "Next.js", Level: domain.LevelAdvanced, Category: domain.CategoryFrontend},
		{Name: "TypeScript", Level: domain.LevelIntermediate, Category: domain.CategoryFrontend},
		{Name: "Tailwind CSS", Level: domain.LevelAdvanced, Category: domain.CategoryFrontend},
		{Name: "Node.js", Level: domain.LevelIntermediate, Category: domain.CategoryBackend},
		{Name: "Express.js", Level: domain.LevelIntermediate, Category: domain.CategoryBackend},
		{Name: "PostgreSQL", Level: domain.LevelBeginner, Category: domain.CategoryBackend},
		{Name: "Docker", Level: domain.LevelBeginner, Category: domain.CategoryDevOps},
		{Name: "Git", Level: domain.LevelAdvanced, Category: domain.CategoryDevOps},
		{Name: "Figma", Level: domain.LevelIntermediate, Category: domain.CategoryDesign},
	}
}

func fixtureProjects() []domain.Project {
	return []domain.Project{
		{
			ID:           "1",
			Title:        "Personal Blog Platform",
			Description:  "A modern blog with markdown authoring, tag browsing and full-text search.",
			ImageURL:     "/projects/blog.jpg",
			DemoURL:      "https://blog-demo.vercel.app",
			GitHubURL:    "https://github.com/alexchen/blog",
			Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Vercel"},
			Featured:     true,
			CreatedAt:    day("2024-01-15"),
		},
		{
			ID:           "2",
			Title:        "E-commerce Admin",
			Description:  "Catalog management, order processing and sales dashboards for small shops.",
			ImageURL:     "/projects/ecommerce.jpg",
			DemoURL:      "https://ecommerce-admin.vercel.app",
			GitHubURL:    "https://github.com/alexchen/ecommerce-admin",
			Technologies: []string{"React", "Node.js", "MongoDB", "Ant Design"},
			Featured:     true,
			CreatedAt:    day("2024-02-20"),
		},
		{
			ID:           "3",
			Title:        "Weather Forecast App",
			Description:  "Live weather for multiple cities with charted forecasts.",
			ImageURL:     "/projects/weather.jpg",
			DemoURL:      "https://weather-app.vercel.app",
			GitHubURL:    "https://github.com/alexchen/weather-app",
			Technologies: []string{"React Native", "TypeScript", "OpenWeather API"},
			Featured:     false,
			CreatedAt:    day("2024-03-10"),
		},
		{
			ID:           "4",
			Title:        "Task Manager",
			Description:  "A lean task tracker with team collaboration and progress tracking.",
			ImageURL:     "/projects/taskmanager.jpg",
			DemoURL:      "https://task-manager.vercel.app",
			GitHubURL:    "https://github.com/alexchen/task-manager",
			Technologies: []string{"Vue.js", "Express", "PostgreSQL"},
			Featured:     false,
			CreatedAt:    day("2024-04-05"),
		},
	}
}

func fixturePosts() []domain.Post {
	author := domain.Author{Name: "Alex Chen", Avatar: "/avatar.jpg"}
	return []domain.Post{
		{
			ID:      "1",
			Title:   "What's New in Next.js 15",
			Slug:    "nextjs-15-features",
			Excerpt: "A tour of the headline features in Next.js 15, from the App Router to Server Actions.",
			Content: `# What's New in Next.js 15

Next.js 15 ships a lot of exciting changes. Let's walk through them...

## 1. App Router

The new App Router brings far more powerful routing...

## 2. Server Actions

Server Actions make form handling simpler than ever...

## 3. Performance

Next.js 15 is noticeably faster as well...`,
			CoverImage:  "/posts/nextjs-15.jpg",
			PublishedAt: day("2024-10-08"),
			UpdatedAt:   day("2024-10-09"),
			Author:      author,
			Tags:        []string{"Next.js", "React", "Web"},
			Category:    "Engineering",
			Published:   true,
		},
		{
			ID:      "2",
			Title:   "TypeScript Best Practices",
			Slug:    "typescript-best-practices",
			Excerpt: "Practical habits for TypeScript projects and the traps worth avoiding.",
			Content: `# TypeScript Best Practices

TypeScript brings type safety to JavaScript development...

## Type definitions

Good type definitions are the foundation of any TypeScript codebase...

## Tooling

Getting tsconfig.json right...`,
			CoverImage:  "/posts/typescript.jpg",
			PublishedAt: day("2024-10-05"),
			UpdatedAt:   day("2024-10-05"),
			Author:      author,
			Tags:        []string{"TypeScript", "JavaScript", "Type Systems"},
			Category:    "Engineering",
			Published:   true,
		},
		{
			ID:      "3",
			Title:   "Tailwind CSS in Practice",
			Slug:    "tailwind-css-tips",
			Excerpt: "Everyday Tailwind CSS techniques and a few advanced tricks.",
			Content: `# Tailwind CSS in Practice

Tailwind CSS offers a development experience like no other...

## Responsive design

The responsive modifiers are remarkably intuitive...

## Custom configuration

tailwind.config.js lets you shape the design system...`,
			CoverImage:  "/posts/tailwind.jpg",
			PublishedAt: day("2024-10-01"),
			UpdatedAt:   day("2024-10-02"),
			Author:      author,
			Tags:        []string{"CSS", "Tailwind", "Styling", "Design Systems"},
			Category:    "Frontend",
			Published:   true,
		},
		{
			ID:      "4",
			Title:   "Notes on Go Concurrency",
			Slug:    "go-concurrency-notes",
			Excerpt: "Work in progress: channels, contexts and knowing when to reach for a mutex.",
			Content: `# Notes on Go Concurrency

Draft.

## Channels vs mutexes

...`,
			PublishedAt: day("2024-10-12"),
			UpdatedAt:   day("2024-10-12"),
			Author:      author,
			Tags:        []string{"Go", "Concurrency"},
			Category:    "Engineering",
			Published:   false,
		},
	}
}
