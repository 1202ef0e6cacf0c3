package content

import "github.com/pmtrec/portofolio/models"

// Built-in portfolio entries. These are fixed at compile time, immutable at
// runtime and always listed ahead of custom entries.

func builtinProjects() []models.Project {
	return []models.Project{
		{
			ID:              1,
			Title:           "E-commerce Platform",
			Description:     "Plateforme e-commerce complète avec gestion des commandes, paiements et analytics",
			LongDescription: "Une plateforme e-commerce moderne développée avec React et Node.js, intégrant Stripe pour les paiements, un système d'analytics avancé et une interface d'administration complète. Le projet inclut également un système de recommandations basé sur l'IA.",
			Image:           "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"React", "Node.js", "MongoDB", "Stripe"},
			Category:        models.CategoryFullstack,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        true,
			Stats:           map[string]string{"users": "10k+", "orders": "50k+", "revenue": "€2M+"},
		},
		{
			ID:              2,
			Title:           "Dashboard Analytics",
			Description:     "Dashboard interactif pour la visualisation de données business",
			LongDescription: "Un dashboard de business intelligence développé avec React et D3.js, permettant la visualisation en temps réel de métriques complexes. Intégration avec diverses APIs et export de rapports personnalisés.",
			Image:           "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"React", "D3.js", "Python", "PostgreSQL"},
			Category:        models.CategoryFrontend,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        false,
			Stats:           map[string]string{"charts": "25+", "datasets": "100+", "exports": "1k+"},
		},
		{
			ID:              3,
			Title:           "API Rest Microservices",
			Description:     "Architecture microservices avec API REST haute performance",
			LongDescription: "Une architecture microservices scalable avec Docker, Kubernetes et CI/CD. Gestion de l'authentification, rate limiting, monitoring et documentation automatique avec Swagger.",
			Image:           "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"Node.js", "Docker", "Kubernetes", "Redis"},
			Category:        models.CategoryBackend,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        true,
			Stats:           map[string]string{"requests": "1M+/day", "uptime": "99.9%", "services": "12"},
		},
		{
			ID:              4,
			Title:           "App Mobile React Native",
			Description:     "Application mobile cross-platform pour la gestion de tâches",
			LongDescription: "Application mobile développée avec React Native et Expo, synchronisation cloud, notifications push et interface intuitive. Disponible sur iOS et Android avec plus de 5000 téléchargements.",
			Image:           "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"React Native", "Expo", "Firebase", "Redux"},
			Category:        models.CategoryMobile,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        false,
			Stats:           map[string]string{"downloads": "5k+", "rating": "4.8⭐", "users": "2k+"},
		},
		{
			ID:              5,
			Title:           "Portfolio Designer",
			Description:     "Site portfolio pour un designer UX/UI avec animations avancées",
			LongDescription: "Portfolio interactif développé avec Next.js et Framer Motion, mettant en valeur le travail d'un designer avec des animations fluides, optimisé pour le SEO et les performances.",
			Image:           "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"Next.js", "Framer Motion", "Tailwind", "Vercel"},
			Category:        models.CategoryFrontend,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        true,
			Stats:           map[string]string{"visitors": "100k+", "bounce": "<30%", "speed": "95/100"},
		},
		{
			ID:              6,
			Title:           "ChatBot IA",
			Description:     "Chatbot intelligent avec traitement du langage naturel",
			LongDescription: "Chatbot développé avec Python et intégration OpenAI API, capable de comprendre le contexte et de fournir des réponses pertinentes. Interface web moderne et API REST.",
			Image:           "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies:    []string{"Python", "OpenAI", "FastAPI", "React"},
			Category:        models.CategoryFullstack,
			Github:          "https://github.com",
			Demo:            "https://demo.com",
			Featured:        false,
			Stats:           map[string]string{"messages": "100k+", "accuracy": "95%", "languages": "5"},
		},
	}
}

func builtinCertifications() []models.Certification {
	return []models.Certification{
		{
			ID:          1,
			Title:       "AWS Certified Solutions Architect",
			Description: "Certification démontrant une expertise dans la conception et le déploiement d'applications sur AWS",
			FileURL:     "/uploads/CV-EN.pdf",
			FileType:    models.FileTypePDF,
			IssueDate:   "2023-06-15",
			Issuer:      "Amazon Web Services",
			Image:       "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:          2,
			Title:       "React Developer Certification",
			Description: "Certification officielle React pour le développement d'applications web modernes",
			FileURL:     "/uploads/CV-FR.pdf",
			FileType:    models.FileTypePDF,
			IssueDate:   "2023-04-20",
			Issuer:      "Meta (Facebook)",
			Image:       "https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:          3,
			Title:       "Node.js Professional",
			Description: "Certification avancée en développement backend avec Node.js et Express",
			FileURL:     "/uploads/Image collée.png",
			FileType:    models.FileTypeImage,
			IssueDate:   "2023-02-10",
			Issuer:      "OpenJS Foundation",
			Image:       "https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	}
}
