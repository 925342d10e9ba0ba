package content

// Seed data shown until the admin saves a collection for the first time.

const aboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes. ` +
	`Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a ` +
	`different language, experimenting with tools, or solving tricky problems. ` +
	`When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends, ` +
	`or chasing down a new challenge outside the screen.`

func SeedProjects() []Project {
	return []Project{
		{
			ID:    "1",
			Title: "Terminal Mail",
			Description: "A terminal-based email client built in Go with fuzzyfinder capabilities " +
				"using the Charmbracelet TUI framework and go-imap.",
			Category:     "cli",
			Role:         []string{"backend", "design"},
			Tags:         []string{"go", "tui", "email"},
			Technologies: []string{"Go", "Bubble Tea", "go-imap"},
			Featured:     true,
			Year:         "2025",
		},
		{
			ID:    "2",
			Title: "Terminal Music",
			Description: "A terminal-based music streaming application built in Go with an elegant TUI " +
				"interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.",
			Category:     "cli",
			Role:         []string{"backend"},
			Tags:         []string{"go", "tui", "music"},
			Technologies: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
			Year:         "2025",
		},
		{
			ID:    "3",
			Title: "Game Recommender",
			Description: "A machine learning-powered web application that uses TF-IDF vectorization and cosine " +
				"similarity to recommend games based on content analysis, featuring interactive data visualizations and " +
				"real-time filtering by user reviews and ratings.",
			Category:     "machine-learning",
			Role:         []string{"data", "frontend"},
			Tags:         []string{"python", "ml", "recommendations"},
			Technologies: []string{"Python", "scikit-learn", "Plotly"},
			Year:         "2023",
		},
		{
			ID:    "4",
			Title: "Portfolio Website",
			Description: "A modern, responsive portfolio website built with Go, Gin framework, and HTMX for " +
				"dynamic interactions, styled with Tailwind CSS and enhanced with Alpine.js for seamless client-side " +
				"interactivity without traditional JavaScript frameworks.",
			Category:     "web",
			Role:         []string{"frontend", "backend", "design"},
			Tags:         []string{"go", "gin", "htmx", "tailwind"},
			Technologies: []string{"Go", "Gin", "HTMX", "Tailwind CSS", "Alpine.js"},
			Featured:     true,
			Year:         "2025",
		},
	}
}

func SeedServices() []Service {
	return []Service{
		{
			ID:          "1",
			Title:       "Web Development",
			Description: "Fast, server-rendered websites and APIs in Go with a light touch of JavaScript.",
			Icon:        "code",
			Category:    "development",
			Features:    []string{"Go backends", "HTMX front-ends", "REST APIs"},
		},
		{
			ID:          "2",
			Title:       "Command-Line Tools",
			Description: "Terminal applications and automation that fit into an existing workflow.",
			Icon:        "terminal",
			Category:    "development",
			Features:    []string{"TUI design", "Cross-platform builds", "Scripting"},
		},
		{
			ID:          "3",
			Title:       "Project Coordination",
			Description: "Agile planning and delivery for small teams, from backlog to release.",
			Icon:        "clipboard",
			Category:    "consulting",
			Features:    []string{"Sprint planning", "Stakeholder updates", "Process improvement"},
		},
	}
}

func SeedExperiences() []Experience {
	return []Experience{
		{
			ID:        "1",
			Title:     "Presentation Expert",
			Company:   "Target",
			Type:      "work",
			StartDate: "Aug 2023",
			Current:   true,
			Logo:      "images/TargetLogo.jpg",
			Achievements: []string{
				"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
				"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
				"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
			},
		},
		{
			ID:        "2",
			Title:     "Manager",
			Company:   "Jasons Catered Events",
			Type:      "work",
			StartDate: "Aug 2016",
			Current:   true,
			Logo:      "images/jasonsCateringLogo.png",
			Achievements: []string{
				"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
				"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
				"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
			},
		},
		{
			ID:        "3",
			Title:     "Bachelor of Computer Science",
			Company:   "Western Governors University",
			Type:      "education",
			StartDate: "Sept 2019",
			EndDate:   "May 2023",
			Logo:      "images/WGU-logo.png",
			Achievements: []string{
				"Graduated Magna Cum Laude with 3.8 GPA",
				"Relevant coursework: Data Structures, Algorithms, Web Development",
				"Senior project: Machine Learning recommendation system",
			},
		},
		{
			ID:        "4",
			Title:     "Project Management",
			Company:   "CompTIA",
			Type:      "certification",
			StartDate: "July 2022",
			Current:   true,
			Logo:      "images/comptiaCert.png",
			Achievements: []string{
				"Certified in agile project management methodology",
			},
		},
	}
}

func DefaultSettings() Settings {
	return Settings{
		SiteTitle: "Zach.dev",
		Tagline:   "Software developer building useful, fun things in Go",
		Bio:       aboutMe,
		Available: true,
	}
}
