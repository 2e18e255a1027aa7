package fixtures

// Default returns the compiled-in seed. Every account uses the password
// "password123".
func Default() *Seed {
	return &Seed{
		Users: []SeedUser{
			{
				ID:       "1",
				Name:     "Sarah Chen",
				Email:    "sarah@example.com",
				Password: "password123",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
				Bio:      "Adventure seeker and travel photographer",
				Role:     "user",
			},
			{
				ID:       "2",
				Name:     "Admin",
				Email:    "admin@travellog.com",
				Password: "password123",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
				Role:     "admin",
			},
			{
				ID:       "3",
				Name:     "John Traveler",
				Email:    "john@example.com",
				Password: "password123",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=John",
				Bio:      "Exploring the world one country at a time",
				Role:     "user",
			},
			{
				ID:       "4",
				Name:     "Emma Wilson",
				Email:    "emma@example.com",
				Password: "password123",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Emma",
				Bio:      "Digital nomad | Food enthusiast",
				Role:     "user",
			},
		},
		Posts: []SeedPost{
			{
				ID:     "1",
				UserID: "1",
				Images: []string{
					"https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=800",
					"https://images.unsplash.com/photo-1488085061387-422e29b40080?w=800",
				},
				Title:     "Santorini Sunset",
				Caption:   "The most breathtaking sunset I've ever witnessed. Santorini never disappoints!",
				Tags:      []string{"sunset", "greece", "santorini", "travel"},
				Location:  "Santorini, Greece",
				Likes:     342,
				Comments:  28,
				CreatedAt: "2024-03-15T18:30:00Z",
			},
			{
				ID:        "2",
				UserID:    "3",
				Images:    []string{"https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800"},
				Title:     "Seoul Street Food",
				Caption:   "Exploring the incredible street food scene in Seoul #foodie",
				Tags:      []string{"food", "korea", "seoul", "streetfood"},
				Location:  "Seoul, South Korea",
				Likes:     256,
				Comments:  19,
				CreatedAt: "2024-03-12T12:00:00Z",
			},
			{
				ID:        "3",
				UserID:    "4",
				Images:    []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"},
				Title:     "Alpine Summit",
				Caption:   "The journey is always worth it when you reach the top",
				Tags:      []string{"hiking", "mountains", "nature", "adventure"},
				Location:  "Swiss Alps",
				Likes:     421,
				Comments:  35,
				CreatedAt: "2024-03-10T09:15:00Z",
			},
			{
				ID:        "4",
				UserID:    "1",
				Images:    []string{"https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800"},
				Title:     "Paris by Night",
				Caption:   "Lost in the beauty of Paris. The Eiffel Tower at night is pure magic!",
				Tags:      []string{"paris", "france", "eiffeltower", "nightphotography"},
				Location:  "Paris, France",
				Likes:     567,
				Comments:  42,
				CreatedAt: "2024-03-08T20:00:00Z",
			},
			{
				ID:     "5",
				UserID: "3",
				Images: []string{
					"https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800",
					"https://images.unsplash.com/photo-1528543606781-2f6e6857f318?w=800",
				},
				Title:      "Bali Island Hopping",
				Caption:    "Island hopping in Bali. Paradise found!",
				Tags:       []string{"bali", "indonesia", "beach", "islandlife"},
				Location:   "Bali, Indonesia",
				Likes:      689,
				Comments:   51,
				FlagReason: "Reported: possible spam links in caption",
				CreatedAt:  "2024-03-05T14:30:00Z",
			},
			{
				ID:        "6",
				UserID:    "4",
				Images:    []string{"https://images.unsplash.com/photo-1513002749550-c59d786b8e6c?w=800"},
				Title:     "Oia Postcards",
				Caption:   "Santorini vibes. Every corner is a postcard!",
				Tags:      []string{"santorini", "greece", "architecture", "blueandwhite"},
				Location:  "Oia, Santorini",
				Likes:     892,
				Comments:  67,
				CreatedAt: "2024-03-02T16:45:00Z",
			},
		},
		Reviews: []SeedReview{
			{
				ID:          "1",
				UserID:      "1",
				Destination: "Tokyo, Japan",
				Rating:      5,
				Title:       "An Unforgettable Experience",
				Body:        "Tokyo exceeded all my expectations! From the bustling streets of Shibuya to the peaceful gardens, every moment was magical. The food, culture, and people made this trip truly special.",
				Helpful:     45,
				CreatedAt:   "2024-03-14T10:00:00Z",
			},
			{
				ID:          "2",
				UserID:      "1",
				Destination: "Paris, France",
				Rating:      4,
				Title:       "Beautiful but Crowded",
				Body:        "Paris is stunning, especially in spring. The architecture and art are incredible. However, major tourist spots can get very crowded. Would recommend visiting early in the morning.",
				Helpful:     32,
				CreatedAt:   "2024-03-08T14:30:00Z",
			},
			{
				ID:          "3",
				UserID:      "1",
				Destination: "Bali, Indonesia",
				Rating:      5,
				Title:       "Paradise on Earth",
				Body:        "Bali has it all - beaches, culture, temples, and amazing food. The locals are incredibly welcoming. Perfect for both relaxation and adventure seekers.",
				Helpful:     67,
				CreatedAt:   "2024-03-01T16:45:00Z",
			},
		},
		Recommendations: []SeedRecommendation{
			{
				ID:          "1",
				Destination: "Kyoto",
				Country:     "Japan",
				Description: "Experience ancient temples, traditional tea ceremonies, and beautiful cherry blossoms in this historic city.",
				Itinerary: []string{
					"Visit Fushimi Inari Shrine",
					"Explore Arashiyama Bamboo Grove",
					"Tea ceremony in Gion district",
					"Philosopher's Path walk",
				},
				Score:    95,
				Image:    "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800",
				Budget:   "$1,500 - $2,500",
				Duration: "5 days",
			},
			{
				ID:          "2",
				Destination: "Barcelona",
				Country:     "Spain",
				Description: "Vibrant city combining stunning architecture, beaches, and incredible cuisine.",
				Itinerary: []string{
					"Sagrada Familia tour",
					"Beach day at Barceloneta",
					"Gothic Quarter exploration",
					"Tapas crawl in El Born",
				},
				Score:    92,
				Image:    "https://images.unsplash.com/photo-1562883676-8c7feb83f09b?w=800",
				Budget:   "$1,200 - $2,000",
				Duration: "4 days",
			},
			{
				ID:          "3",
				Destination: "Queenstown",
				Country:     "New Zealand",
				Description: "Adventure capital with breathtaking landscapes and endless outdoor activities.",
				Itinerary: []string{
					"Bungee jumping",
					"Milford Sound cruise",
					"Skyline gondola ride",
					"Wine tasting in Gibbston Valley",
				},
				Score:    90,
				Image:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
				Budget:   "$2,000 - $3,000",
				Duration: "6 days",
			},
		},
	}
}
