package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/portfolio-cms/portfolio-backend/config"
	"github.com/portfolio-cms/portfolio-backend/internal/bootstrap"
	"github.com/portfolio-cms/portfolio-backend/internal/experiences"
	"github.com/portfolio-cms/portfolio-backend/internal/hero"
	"github.com/portfolio-cms/portfolio-backend/internal/projects"
	"github.com/portfolio-cms/portfolio-backend/internal/storage/postgres"
)

// Seeds the database with sample portfolio content. Existing hero,
// project and experience rows are replaced.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg.App.Environment, cfg.App.LogLevel)

	ctx := context.Background()

	db, err := postgres.Open(ctx, postgres.DSN(&cfg.Database))
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		slog.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	for _, table := range []string{"heroes", "projects", "experiences"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			slog.Error("clear table", "table", table, "err", err)
			os.Exit(1)
		}
	}

	heroRepo := hero.NewRepo(db)
	if _, err := heroRepo.Upsert(ctx, hero.UpsertHero{
		Name:         "Alex Doe",
		Title:        "Full Stack Developer",
		Description:  "Hey, I'm Alex. Here you can check out what I'm working on. I try my best to create things with code.",
		ProfileImage: ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face"),
	}); err != nil {
		slog.Error("seed hero", "err", err)
		os.Exit(1)
	}

	projectRepo := projects.NewRepo(db)
	sampleProjects := []projects.CreateProject{
		{
			Title:        "E-commerce Platform",
			Description:  "A full-stack e-commerce solution with React frontend and Node.js backend. Features include user authentication, product catalog, shopping cart, and payment integration.",
			Image:        ptr("https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=600&h=400&fit=crop"),
			GithubURL:    ptr("https://github.com/example/ecommerce"),
			LiveURL:      ptr("https://ecommerce-demo.vercel.app"),
			Technologies: []string{"React", "Node.js", "MongoDB", "Stripe", "Tailwind CSS"},
			IsFeatured:   true,
		},
		{
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates, team collaboration features, and productivity analytics.",
			Image:        ptr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=600&h=400&fit=crop"),
			GithubURL:    ptr("https://github.com/example/taskapp"),
			LiveURL:      ptr("https://taskapp-demo.vercel.app"),
			Technologies: []string{"Next.js", "Prisma", "PostgreSQL", "Socket.io", "TypeScript"},
			IsFeatured:   true,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "A responsive weather dashboard that displays current weather conditions, forecasts, and interactive maps using OpenWeather API.",
			Image:        ptr("https://images.unsplash.com/photo-1504608524841-42fe6f032b4b?w=600&h=400&fit=crop"),
			GithubURL:    ptr("https://github.com/example/weather"),
			LiveURL:      ptr("https://weather-dashboard-demo.vercel.app"),
			Technologies: []string{"Vue.js", "Express.js", "OpenWeather API", "Chart.js", "Bootstrap"},
			IsFeatured:   true,
		},
		{
			Title:        "Blog Platform",
			Description:  "A modern blog platform with content management system, user authentication, and SEO optimization.",
			Image:        ptr("https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=600&h=400&fit=crop"),
			GithubURL:    ptr("https://github.com/example/blog"),
			LiveURL:      ptr("https://blog-demo.vercel.app"),
			Technologies: []string{"Gatsby", "GraphQL", "Contentful", "Netlify"},
		},
		{
			Title:        "Mobile Fitness App",
			Description:  "A React Native fitness tracking app with workout plans, progress tracking, and social features.",
			Image:        ptr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=600&h=400&fit=crop"),
			GithubURL:    ptr("https://github.com/example/fitness"),
			Technologies: []string{"React Native", "Firebase", "Redux", "Expo"},
		},
	}
	for _, p := range sampleProjects {
		if _, err := projectRepo.Create(ctx, p); err != nil {
			slog.Error("seed project", "title", p.Title, "err", err)
			os.Exit(1)
		}
	}

	experienceRepo := experiences.NewRepo(db)
	sampleExperiences := []experiences.CreateExperience{
		{
			Title:       "Senior Full Stack Developer",
			Company:     "TechCorp Solutions",
			Duration:    "Jan 2023 - Present",
			Location:    ptr("New York, NY"),
			Description: ptr("Lead a team of 5 developers in building scalable web applications. Architected and implemented microservices using Node.js and Python."),
			Skills:      []string{"React", "Node.js", "Python", "AWS", "Docker", "PostgreSQL"},
		},
		{
			Title:       "Full Stack Developer",
			Company:     "Innovation Labs",
			Duration:    "Jun 2021 - Dec 2022",
			Location:    ptr("San Francisco, CA"),
			Description: ptr("Developed and maintained multiple client projects using modern web technologies. Built RESTful APIs and integrated third-party services."),
			Skills:      []string{"Vue.js", "Express.js", "MongoDB", "GraphQL", "Jest"},
		},
		{
			Title:       "Frontend Developer",
			Company:     "StartupXYZ",
			Duration:    "Aug 2020 - May 2021",
			Location:    ptr("Remote"),
			Description: ptr("Built responsive web applications using React and TypeScript. Implemented state management with Redux and optimized application performance."),
			Skills:      []string{"React", "TypeScript", "Redux", "Webpack", "SASS"},
		},
	}
	for _, e := range sampleExperiences {
		if _, err := experienceRepo.Create(ctx, e); err != nil {
			slog.Error("seed experience", "title", e.Title, "err", err)
			os.Exit(1)
		}
	}

	slog.Info("database seeded",
		"projects", len(sampleProjects),
		"experiences", len(sampleExperiences),
	)
}

func ptr(s string) *string {
	return &s
}
