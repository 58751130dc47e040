package catalog

import "github.com/egannguyen/supplement-store/internal/entity"

// Seed returns the stock demo catalog.
func Seed() []entity.Product {
	return []entity.Product{
		{
			ID:           "1",
			Name:         "Whey Protein Isolate",
			Description:  "Premium whey protein isolate with 25g protein per serving. Perfect for muscle recovery and growth.",
			Price:        49.99,
			ImageURL:     "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=500&h=500&fit=crop",
			Category:     "Protein",
			IsBestSeller: true,
			Stock:        150,
			Rating:       4.8,
			Reviews:      234,
		},
		{
			ID:           "2",
			Name:         "Creatine Monohydrate",
			Description:  "Pure creatine monohydrate for enhanced strength and performance. 5g per serving.",
			Price:        29.99,
			ImageURL:     "https://images.unsplash.com/photo-1579722820308-d74e571900a9?w=500&h=500&fit=crop",
			Category:     "Performance",
			IsBestSeller: true,
			Stock:        200,
			Rating:       4.9,
			Reviews:      456,
		},
		{
			ID:           "3",
			Name:         "Omega-3 Fish Oil",
			Description:  "High-quality omega-3 fatty acids for heart and brain health. 1000mg per softgel.",
			Price:        24.99,
			ImageURL:     "https://images.unsplash.com/photo-1505576399279-565b52d4ac71?w=500&h=500&fit=crop",
			Category:     "Health",
			IsBestSeller: true,
			Stock:        300,
			Rating:       4.7,
			Reviews:      189,
		},
		{
			ID:           "4",
			Name:         "Pre-Workout Energy",
			Description:  "Explosive energy and focus for your workouts. Contains caffeine and beta-alanine.",
			Price:        39.99,
			ImageURL:     "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=500&h=500&fit=crop",
			Category:     "Performance",
			IsBestSeller: true,
			Stock:        120,
			Rating:       4.6,
			Reviews:      312,
		},
		{
			ID:           "5",
			Name:         "BCAA Recovery",
			Description:  "Branch chain amino acids for muscle recovery and reduced soreness. 2:1:1 ratio.",
			Price:        34.99,
			ImageURL:     "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=500&h=500&fit=crop",
			Category:     "Recovery",
			IsBestSeller: true,
			Stock:        180,
			Rating:       4.5,
			Reviews:      267,
		},
		{
			ID:           "6",
			Name:         "Multivitamin Complex",
			Description:  "Complete daily multivitamin with essential vitamins and minerals.",
			Price:        19.99,
			ImageURL:     "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=500&h=500&fit=crop",
			Category:     "Health",
			IsBestSeller: true,
			Stock:        250,
			Rating:       4.4,
			Reviews:      145,
		},
		{
			ID:           "7",
			Name:         "Casein Protein",
			Description:  "Slow-digesting protein perfect for overnight muscle recovery. Rich and creamy.",
			Price:        44.99,
			ImageURL:     "https://images.unsplash.com/photo-1591337676887-a217a6970a8a?w=500&h=500&fit=crop",
			Category:     "Protein",
			IsBestSeller: false,
			Stock:        100,
			Rating:       4.6,
			Reviews:      178,
		},
		{
			ID:           "8",
			Name:         "Glutamine Powder",
			Description:  "Support muscle recovery and immune system health with pure L-Glutamine.",
			Price:        27.99,
			ImageURL:     "https://images.unsplash.com/photo-1600880292089-90a7e086ee0c?w=500&h=500&fit=crop",
			Category:     "Recovery",
			IsBestSeller: false,
			Stock:        140,
			Rating:       4.3,
			Reviews:      92,
		},
		{
			ID:           "9",
			Name:         "Vitamin D3 + K2",
			Description:  "Optimal bone health and immune support with synergistic vitamin combination.",
			Price:        22.99,
			ImageURL:     "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=500&h=500&fit=crop",
			Category:     "Health",
			IsBestSeller: false,
			Stock:        220,
			Rating:       4.7,
			Reviews:      203,
		},
		{
			ID:           "10",
			Name:         "Beta-Alanine",
			Description:  "Increase muscular endurance and reduce fatigue during high-intensity training.",
			Price:        25.99,
			ImageURL:     "https://images.unsplash.com/photo-1579722820308-d74e571900a9?w=500&h=500&fit=crop",
			Category:     "Performance",
			IsBestSeller: false,
			Stock:        160,
			Rating:       4.4,
			Reviews:      134,
		},
		{
			ID:           "11",
			Name:         "ZMA Complex",
			Description:  "Zinc, magnesium, and vitamin B6 for better sleep and recovery.",
			Price:        21.99,
			ImageURL:     "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=500&h=500&fit=crop",
			Category:     "Recovery",
			IsBestSeller: false,
			Stock:        190,
			Rating:       4.5,
			Reviews:      167,
		},
		{
			ID:           "12",
			Name:         "Collagen Peptides",
			Description:  "Support joint health, skin elasticity, and hair strength with hydrolyzed collagen.",
			Price:        32.99,
			ImageURL:     "https://images.unsplash.com/photo-1556229174-5e42a09e8d79?w=500&h=500&fit=crop",
			Category:     "Health",
			IsBestSeller: false,
			Stock:        175,
			Rating:       4.6,
			Reviews:      221,
		},
		{
			ID:           "13",
			Name:         "Plant Protein Blend",
			Description:  "Vegan protein from pea, rice, and hemp. Complete amino acid profile.",
			Price:        42.99,
			ImageURL:     "https://images.unsplash.com/photo-1622484211443-9ea78c86fc9f?w=500&h=500&fit=crop",
			Category:     "Protein",
			IsBestSeller: false,
			Stock:        130,
			Rating:       4.4,
			Reviews:      156,
		},
		{
			ID:           "14",
			Name:         "L-Carnitine",
			Description:  "Support fat metabolism and energy production during workouts.",
			Price:        28.99,
			ImageURL:     "https://images.unsplash.com/photo-1612929633738-8fe44f7ec841?w=500&h=500&fit=crop",
			Category:     "Performance",
			IsBestSeller: false,
			Stock:        145,
			Rating:       4.2,
			Reviews:      98,
		},
		{
			ID:           "15",
			Name:         "Probiotics",
			Description:  "10 billion CFU for digestive health and immune system support.",
			Price:        29.99,
			ImageURL:     "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?w=500&h=500&fit=crop",
			Category:     "Health",
			IsBestSeller: false,
			Stock:        200,
			Rating:       4.8,
			Reviews:      289,
		},
	}
}
