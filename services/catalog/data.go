package catalog

import "shotz/models"

// serviceData is the full service catalog. Read-only after process start.
var serviceData = []models.Service{
	// Videography.
	{
		ID:              "music-videos",
		Name:            "Music Videos",
		Category:        models.CategoryVideography,
		Icon:            "Music",
		Description:     "Cinematic music video production that brings your sound to life",
		LongDescription: "Professional music video production with high-quality equipment, creative direction, and post-production editing. From concept to final cut, we create visuals that match your artistic vision.",
		Packages: []models.Package{
			{
				Name: "Basic", Price: "$500", Description: "Perfect for emerging artists",
				Duration: "4 hours", DeliveryTime: "1 week",
				Features: []string{"4-hour shoot", "1 location", "Basic color correction", "1 revision", "1080p delivery"},
			},
			{
				Name: "Standard", Price: "$1,000", Description: "Most popular choice",
				Duration: "8 hours", DeliveryTime: "2 weeks",
				Features: []string{"8-hour shoot", "2 locations", "Advanced color grading", "2 revisions", "4K delivery", "Social media cuts"},
			},
			{
				Name: "Premium", Price: "$2,500", Description: "Full cinematic experience",
				Duration: "Full day", DeliveryTime: "3 weeks",
				Features: []string{"Full day shoot", "Multiple locations", "Cinematic editing", "Unlimited revisions", "4K + RAW delivery", "VFX included", "Behind the scenes"},
			},
		},
	},
	{
		ID:              "prom-homecoming",
		Name:            "Prom & Homecoming",
		Category:        models.CategoryVideography,
		Icon:            "Calendar",
		Description:     "Capture your special school events with cinematic style",
		LongDescription: "Professional coverage of prom, homecoming, and school events. We capture the excitement, the dances, and all the memorable moments.",
		Packages: []models.Package{
			{
				Name: "Mini", Price: "$250", Description: "Essential coverage",
				Duration: "2 hours", DeliveryTime: "3 days",
				Features: []string{"2-hour coverage", "Group photos", "Highlight reel (3-5 min)", "Digital delivery"},
			},
			{
				Name: "Full", Price: "$600", Description: "Complete event coverage",
				Duration: "4 hours", DeliveryTime: "1 week",
				Features: []string{"4-hour coverage", "Individual & group shots", "Full event video", "Social media clips", "Photo booth option"},
			},
			{
				Name: "Deluxe", Price: "$1,200", Description: "Premium experience",
				Duration: "Full event", DeliveryTime: "2 weeks",
				Features: []string{"Full event coverage", "Professional lighting", "Same-day highlights", "Photo booth included", "Drone shots"},
			},
		},
	},
	{
		ID:              "sports-media",
		Name:            "Sports Media",
		Category:        models.CategoryVideography,
		Icon:            "Camera",
		Description:     "Dynamic sports coverage and athlete highlight reels",
		LongDescription: "High-energy sports videography for games, tournaments, and athlete recruitment videos. Fast-paced editing that captures the action.",
		Packages: []models.Package{
			{
				Name: "Game Day", Price: "$45", Description: "Single game coverage",
				Duration: "Per game", DeliveryTime: "48 hours",
				Features: []string{"Single game coverage", "Highlight clips", "Action shots", "48-hour delivery", "Social media ready"},
			},
			{
				Name: "Season", Price: "$500", Description: "Season package",
				Duration: "10 games", DeliveryTime: "1 week",
				Features: []string{"10 games coverage", "Player highlights", "Team promo video", "Social media package", "Coach interviews"},
			},
			{
				Name: "Pro Athlete", Price: "$1,000", Description: "Recruitment package",
				Duration: "Custom", DeliveryTime: "2 weeks",
				Features: []string{"Custom highlight reel", "Multi-game coverage", "Recruitment video", "Professional graphics", "Stats overlay"},
			},
		},
	},
	{
		ID:              "events",
		Name:            "Events",
		Category:        models.CategoryVideography,
		Icon:            "Users",
		Description:     "Comprehensive event videography for any occasion",
		LongDescription: "Full coverage of birthdays, anniversaries, graduations, and special celebrations. We capture the moments you will want to remember forever.",
		Packages: []models.Package{
			{
				Name: "Essential", Price: "$500", Description: "Basic coverage",
				Duration: "3 hours", DeliveryTime: "1 week",
				Features: []string{"3-hour coverage", "Event highlights", "Digital gallery", "Basic editing"},
			},
			{
				Name: "Complete", Price: "$1,000", Description: "Full coverage",
				Duration: "6 hours", DeliveryTime: "2 weeks",
				Features: []string{"6-hour coverage", "Full event video", "Photo & video combo", "Quick turnaround", "Interviews included"},
			},
			{
				Name: "Ultimate", Price: "$2,000", Description: "Premium package",
				Duration: "All day", DeliveryTime: "2 weeks",
				Features: []string{"All-day coverage", "Multiple cameras", "Live streaming option", "Premium editing", "Same-day highlight"},
			},
		},
	},
	{
		ID:              "corporate-events",
		Name:            "Corporate Events",
		Category:        models.CategoryVideography,
		Icon:            "Building2",
		Description:     "Professional corporate video production",
		LongDescription: "Corporate event coverage, conferences, product launches, and company celebrations. Professional quality that represents your brand.",
		Packages: []models.Package{
			{
				Name: "Basic", Price: "$800", Description: "Conference recording",
				Duration: "4 hours", DeliveryTime: "1 week",
				Features: []string{"4-hour coverage", "Conference recording", "Basic editing", "Digital delivery", "Audio capture"},
			},
			{
				Name: "Business", Price: "$1,500", Description: "Full production",
				Duration: "Full day", DeliveryTime: "1 week",
				Features: []string{"Full day coverage", "Interviews included", "Branded graphics", "48-hour delivery", "B-roll footage"},
			},
			{
				Name: "Enterprise", Price: "$3,500", Description: "Premium corporate",
				Duration: "Multi-day", DeliveryTime: "2 weeks",
				Features: []string{"Multi-day coverage", "Live streaming", "Professional lighting", "Same-day highlights", "Post-event recap"},
			},
		},
	},
	{
		ID:              "weddings",
		Name:            "Wedding Videography",
		Category:        models.CategoryVideography,
		Icon:            "Heart",
		Description:     "Cinematic wedding films that tell your love story",
		LongDescription: "Beautiful wedding videography capturing every precious moment of your special day. From preparation to reception, we create a timeless film you will treasure.",
		Packages: []models.Package{
			{
				Name: "Essential", Price: "$1,500", Description: "Ceremony focus",
				Duration: "6 hours", DeliveryTime: "4 weeks",
				Features: []string{"6-hour coverage", "Ceremony & reception", "Highlight film (10 min)", "Digital delivery"},
			},
			{
				Name: "Classic", Price: "$3,000", Description: "Full day coverage",
				Duration: "10 hours", DeliveryTime: "6 weeks",
				Features: []string{"10-hour coverage", "Preparation to reception", "Full feature film (30 min)", "Highlight reel", "Drone footage"},
			},
			{
				Name: "Luxury", Price: "$5,500", Description: "Cinematic experience",
				Duration: "Full day +", DeliveryTime: "8 weeks",
				Features: []string{"Unlimited coverage", "2 cinematographers", "Cinematic film (45+ min)", "Same-day edit", "Engagement session included"},
			},
		},
	},

	// Photography.
	{
		ID:              "portrait-photography",
		Name:            "Portrait Photography",
		Category:        models.CategoryPhotography,
		Icon:            "User",
		Description:     "Professional portraits that capture your personality",
		LongDescription: "High-quality portrait sessions for individuals, couples, and families. Studio or on-location with professional lighting and editing.",
		Packages: []models.Package{
			{
				Name: "Mini Session", Price: "$200", Description: "Quick portrait session",
				Duration: "30 min", DeliveryTime: "1 week",
				Features: []string{"30-minute session", "1 outfit", "10 edited photos", "Online gallery", "1 location"},
			},
			{
				Name: "Standard", Price: "$400", Description: "Full portrait session",
				Duration: "1.5 hours", DeliveryTime: "2 weeks",
				Features: []string{"90-minute session", "2-3 outfits", "25 edited photos", "Online gallery", "2 locations", "Print release"},
			},
			{
				Name: "Premium", Price: "$750", Description: "Complete experience",
				Duration: "3 hours", DeliveryTime: "2 weeks",
				Features: []string{"3-hour session", "Unlimited outfits", "50+ edited photos", "Online gallery", "Multiple locations", "Hair & makeup included"},
			},
		},
	},
	{
		ID:              "wedding-photography",
		Name:            "Wedding Photography",
		Category:        models.CategoryPhotography,
		Icon:            "Gem",
		Description:     "Timeless wedding photos to cherish forever",
		LongDescription: "Comprehensive wedding photography capturing every emotion, detail, and special moment of your big day. Artistic and documentary style combined.",
		Packages: []models.Package{
			{
				Name: "Essential", Price: "$1,800", Description: "Key moments coverage",
				Duration: "6 hours", DeliveryTime: "4 weeks",
				Features: []string{"6-hour coverage", "200+ edited photos", "Online gallery", "Print release", "Ceremony & reception"},
			},
			{
				Name: "Complete", Price: "$3,500", Description: "Full day coverage",
				Duration: "10 hours", DeliveryTime: "6 weeks",
				Features: []string{"10-hour coverage", "500+ edited photos", "Online gallery", "Engagement session", "Second photographer", "Premium album"},
			},
			{
				Name: "Luxury", Price: "$6,000", Description: "Ultimate package",
				Duration: "Full day +", DeliveryTime: "8 weeks",
				Features: []string{"Unlimited coverage", "2 photographers", "800+ edited photos", "Engagement + bridal", "Luxury album", "Same-day slideshow"},
			},
		},
	},
	{
		ID:              "family-photography",
		Name:            "Family Photography",
		Category:        models.CategoryPhotography,
		Icon:            "Users",
		Description:     "Beautiful family portraits to treasure",
		LongDescription: "Family photo sessions that capture the love and connection between family members. Fun, relaxed sessions with beautiful results.",
		Packages: []models.Package{
			{
				Name: "Mini", Price: "$250", Description: "Quick family session",
				Duration: "30 min", DeliveryTime: "1 week",
				Features: []string{"30-minute session", "Up to 5 people", "15 edited photos", "Online gallery", "Outdoor location"},
			},
			{
				Name: "Standard", Price: "$450", Description: "Full family session",
				Duration: "1 hour", DeliveryTime: "2 weeks",
				Features: []string{"1-hour session", "Up to 8 people", "35 edited photos", "Online gallery", "2 locations", "Print release"},
			},
			{
				Name: "Extended", Price: "$700", Description: "Large family groups",
				Duration: "2 hours", DeliveryTime: "2 weeks",
				Features: []string{"2-hour session", "Unlimited people", "60+ edited photos", "Online gallery", "Multiple locations", "Group + individual shots"},
			},
		},
	},
	{
		ID:              "maternity-newborn",
		Name:            "Maternity & Newborn",
		Category:        models.CategoryPhotography,
		Icon:            "Baby",
		Description:     "Capture the miracle of life",
		LongDescription: "Tender maternity and newborn photography sessions. Safe, comfortable environment for capturing these precious early moments.",
		Packages: []models.Package{
			{
				Name: "Maternity", Price: "$350", Description: "Pregnancy portraits",
				Duration: "1 hour", DeliveryTime: "2 weeks",
				Features: []string{"1-hour session", "2 outfits", "20 edited photos", "Online gallery", "Partner included"},
			},
			{
				Name: "Newborn", Price: "$500", Description: "Newborn session",
				Duration: "2-3 hours", DeliveryTime: "2 weeks",
				Features: []string{"Studio session", "Props included", "25 edited photos", "Online gallery", "Family shots included"},
			},
			{
				Name: "Bundle", Price: "$750", Description: "Both sessions",
				Duration: "2 sessions", DeliveryTime: "3 weeks",
				Features: []string{"Maternity + Newborn", "50+ total photos", "Online gallery", "Print release", "Priority booking"},
			},
		},
	},
	{
		ID:              "event-photography",
		Name:            "Event Photography",
		Category:        models.CategoryPhotography,
		Icon:            "Sparkles",
		Description:     "Professional event photography for any occasion",
		LongDescription: "Corporate events, birthday parties, graduations, and special celebrations captured with professional quality.",
		Packages: []models.Package{
			{
				Name: "Essential", Price: "$400", Description: "Basic coverage",
				Duration: "2 hours", DeliveryTime: "1 week",
				Features: []string{"2-hour coverage", "100+ edited photos", "Online gallery", "Digital delivery"},
			},
			{
				Name: "Standard", Price: "$800", Description: "Full coverage",
				Duration: "4 hours", DeliveryTime: "2 weeks",
				Features: []string{"4-hour coverage", "250+ edited photos", "Online gallery", "Print release", "Same-day previews"},
			},
			{
				Name: "Premium", Price: "$1,500", Description: "All-inclusive",
				Duration: "8 hours", DeliveryTime: "2 weeks",
				Features: []string{"8-hour coverage", "400+ edited photos", "Online gallery", "Second photographer", "Rush delivery available"},
			},
		},
	},
	{
		ID:              "headshots",
		Name:            "Professional Headshots",
		Category:        models.CategoryPhotography,
		Icon:            "Camera",
		Description:     "Corporate and creative headshots",
		LongDescription: "Professional headshots for LinkedIn, company websites, acting portfolios, and personal branding. Clean, polished results.",
		Packages: []models.Package{
			{
				Name: "Quick", Price: "$150", Description: "Fast headshot session",
				Duration: "15 min", DeliveryTime: "3 days",
				Features: []string{"15-minute session", "1 look", "5 edited photos", "Digital delivery", "Studio lighting"},
			},
			{
				Name: "Professional", Price: "$300", Description: "Full headshot session",
				Duration: "45 min", DeliveryTime: "1 week",
				Features: []string{"45-minute session", "2-3 looks", "15 edited photos", "Online gallery", "Retouching included"},
			},
			{
				Name: "Team", Price: "$800", Description: "Corporate team package",
				Duration: "Half day", DeliveryTime: "1 week",
				Features: []string{"Up to 10 people", "30 min per person", "5 photos each", "Consistent editing", "On-site option"},
			},
		},
	},

	// Editing & design.
	{
		ID:              "video-editing",
		Name:            "Video Editing",
		Category:        models.CategoryEditing,
		Icon:            "Film",
		Description:     "Professional video editing and post-production",
		LongDescription: "Transform your raw footage into polished, professional videos. Color grading, sound design, motion graphics, and more.",
		Packages: []models.Package{
			{
				Name: "Basic", Price: "$200", Description: "Simple editing",
				Duration: "Per project", DeliveryTime: "3-5 days",
				Features: []string{"Up to 5 minutes", "Basic cuts", "Color correction", "2 revisions", "Music included"},
			},
			{
				Name: "Standard", Price: "$500", Description: "Full editing",
				Duration: "Per project", DeliveryTime: "1 week",
				Features: []string{"Up to 15 minutes", "Advanced editing", "Color grading", "Sound design", "5 revisions"},
			},
			{
				Name: "Cinematic", Price: "$1,200", Description: "Premium post-production",
				Duration: "Per project", DeliveryTime: "2 weeks",
				Features: []string{"Unlimited length", "Hollywood-style edit", "VFX & motion graphics", "Unlimited revisions", "Rush delivery"},
			},
		},
	},
	{
		ID:              "graphic-design",
		Name:            "Graphic Design",
		Category:        models.CategoryDesign,
		Icon:            "Palette",
		Description:     "Creative graphic design for all your needs",
		LongDescription: "Logo design, branding, marketing materials, social media graphics, and more. Creative designs that make an impact.",
		Packages: []models.Package{
			{
				Name: "Starter", Price: "$150", Description: "Basic design",
				Duration: "Per project", DeliveryTime: "3-5 days",
				Features: []string{"Logo design", "3 revisions", "Source files", "Social media kit"},
			},
			{
				Name: "Business", Price: "$400", Description: "Brand package",
				Duration: "Per project", DeliveryTime: "1 week",
				Features: []string{"Brand identity", "Business cards", "Flyer design", "Unlimited revisions"},
			},
			{
				Name: "Premium", Price: "$800", Description: "Full branding",
				Duration: "Per project", DeliveryTime: "2 weeks",
				Features: []string{"Full brand package", "Marketing materials", "Website graphics", "Priority support", "Brand guidelines"},
			},
		},
	},
}
