package recommend

import "github.com/ecobeehq/ecoscore-backend/internal/boundaries"

// Action is one sustainable behavior the engine can recommend. ImpactReduction
// maps boundary keys to the percentage pressure reduction the action offers.
type Action struct {
	ID              string             `json:"action_id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	ImpactReduction map[string]float64 `json:"impact_reduction"`
	Difficulty      string             `json:"difficulty"`
	TimeCommitment  string             `json:"time_commitment"`
	Cost            string             `json:"cost"`
	SocialAspect    bool               `json:"social_aspect"`
	CampusSpecific  bool               `json:"campus_specific"`
	Tags            []string           `json:"tags"`
}

// Resource is a campus or local facility supporting one or more actions.
type Resource struct {
	ID             string   `json:"resource_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Location       string   `json:"location"`
	Availability   string   `json:"availability"`
	Cost           string   `json:"cost"`
	RelatedActions []string `json:"related_actions"`
	Tags           []string `json:"tags"`
}

func defaultActions() map[string]Action {
	return map[string]Action{
		"plant_meals": {
			ID:          "plant_meals",
			Name:        "Plant-Based Meals 3x/week",
			Description: "Replace meat meals with plant-based alternatives 3 times per week",
			Category:    "food",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 25, boundaries.Biosphere: 20, boundaries.Biogeochemical: 30,
				boundaries.Freshwater: 15, boundaries.Aerosols: 10,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "free",
			SocialAspect:   true,
			Tags:           []string{"diet", "health", "climate", "beginner-friendly"},
		},
		"local_food": {
			ID:          "local_food",
			Name:        "Choose Local & Seasonal Food",
			Description: "Buy locally sourced, seasonal produce when possible",
			Category:    "food",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 15, boundaries.Biosphere: 25,
				boundaries.Freshwater: 10, boundaries.Aerosols: 20,
			},
			Difficulty:     "medium",
			TimeCommitment: "weekly",
			Cost:           "low",
			CampusSpecific: true,
			Tags:           []string{"local", "seasonal", "farmers-market"},
		},
		"food_waste_reduction": {
			ID:          "food_waste_reduction",
			Name:        "Reduce Food Waste",
			Description: "Plan meals, store food properly, and compost scraps",
			Category:    "food",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 20, boundaries.Biogeochemical: 15, boundaries.Freshwater: 10,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "free",
			Tags:           []string{"waste", "planning", "composting"},
		},
		"secondhand_shopping": {
			ID:          "secondhand_shopping",
			Name:        "Shop Second-Hand First",
			Description: "Check thrift stores and online marketplaces before buying new clothes",
			Category:    "clothing",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 60, boundaries.Freshwater: 70,
				boundaries.Aerosols: 50, boundaries.Biosphere: 40,
			},
			Difficulty:     "easy",
			TimeCommitment: "monthly",
			Cost:           "low",
			SocialAspect:   true,
			CampusSpecific: true,
			Tags:           []string{"thrift", "vintage", "budget-friendly"},
		},
		"clothing_repair": {
			ID:          "clothing_repair",
			Name:        "Repair & Mend Clothes",
			Description: "Fix damaged clothes instead of discarding them",
			Category:    "clothing",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 80, boundaries.Freshwater: 90, boundaries.Aerosols: 70,
			},
			Difficulty:     "medium",
			TimeCommitment: "monthly",
			Cost:           "low",
			SocialAspect:   true,
			CampusSpecific: true,
			Tags:           []string{"repair", "diy", "skills"},
		},
		"clothing_swap": {
			ID:          "clothing_swap",
			Name:        "Join Clothing Swaps",
			Description: "Participate in campus clothing exchange events",
			Category:    "clothing",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 70, boundaries.Freshwater: 80, boundaries.Aerosols: 60,
			},
			Difficulty:     "easy",
			TimeCommitment: "monthly",
			Cost:           "free",
			SocialAspect:   true,
			CampusSpecific: true,
			Tags:           []string{"swap", "community", "social"},
		},
		"active_transport": {
			ID:          "active_transport",
			Name:        "Walk or Bike for Short Trips",
			Description: "Use walking or cycling for trips under 3km",
			Category:    "transport",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 90, boundaries.Aerosols: 85, boundaries.Biosphere: 30,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "free",
			Tags:           []string{"health", "fitness", "zero-emission"},
		},
		"public_transport": {
			ID:          "public_transport",
			Name:        "Use Public Transport",
			Description: "Choose buses, trains, or campus shuttles for longer trips",
			Category:    "transport",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 60, boundaries.Aerosols: 70, boundaries.Biosphere: 20,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "low",
			CampusSpecific: true,
			Tags:           []string{"public", "affordable", "accessible"},
		},
		"carpool": {
			ID:          "carpool",
			Name:        "Carpool or Rideshare",
			Description: "Share rides with friends or use carpooling apps",
			Category:    "transport",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 40, boundaries.Aerosols: 45,
			},
			Difficulty:     "medium",
			TimeCommitment: "weekly",
			Cost:           "low",
			SocialAspect:   true,
			CampusSpecific: true,
			Tags:           []string{"social", "cost-sharing", "flexible"},
		},
		"minimal_consumption": {
			ID:          "minimal_consumption",
			Name:        "Practice Mindful Consumption",
			Description: "Buy only what you need and choose quality over quantity",
			Category:    "lifestyle",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 30, boundaries.Biosphere: 35,
				boundaries.Freshwater: 25, boundaries.Aerosols: 40,
			},
			Difficulty:     "medium",
			TimeCommitment: "daily",
			Cost:           "free",
			Tags:           []string{"mindfulness", "minimalism", "budgeting"},
		},
		"digital_minimalism": {
			ID:          "digital_minimalism",
			Name:        "Reduce Digital Footprint",
			Description: "Stream less, use devices longer, choose efficient settings",
			Category:    "lifestyle",
			ImpactReduction: map[string]float64{
				boundaries.Climate: 15, boundaries.Aerosols: 20,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "free",
			Tags:           []string{"digital", "energy", "screen-time"},
		},
		"reusable_items": {
			ID:          "reusable_items",
			Name:        "Use Reusable Items",
			Description: "Carry reusable water bottle, coffee cup, and shopping bags",
			Category:    "lifestyle",
			ImpactReduction: map[string]float64{
				boundaries.Aerosols: 60, boundaries.Climate: 10, boundaries.Biosphere: 20,
			},
			Difficulty:     "easy",
			TimeCommitment: "daily",
			Cost:           "low",
			Tags:           []string{"reusable", "waste-reduction", "habit"},
		},
	}
}

func defaultResources() map[string]Resource {
	return map[string]Resource{
		"campus_repair_cafe": {
			ID:             "campus_repair_cafe",
			Name:           "Campus Repair Café",
			Description:    "Free repair services for electronics, clothing, and bikes",
			Type:           "repair_cafe",
			Location:       "Student Union Building",
			Availability:   "Saturdays 10am-4pm",
			Cost:           "free",
			RelatedActions: []string{"clothing_repair", "minimal_consumption"},
			Tags:           []string{"repair", "free", "community", "skills"},
		},
		"clothing_swap_shop": {
			ID:             "clothing_swap_shop",
			Name:           "Student Clothing Exchange",
			Description:    "Drop off unwanted clothes, take what you need",
			Type:           "swap_shop",
			Location:       "Campus Sustainability Center",
			Availability:   "Mon-Fri 9am-5pm",
			Cost:           "free",
			RelatedActions: []string{"clothing_swap", "secondhand_shopping"},
			Tags:           []string{"clothing", "free", "exchange"},
		},
		"bike_share": {
			ID:             "bike_share",
			Name:           "Campus Bike Share",
			Description:    "Short-term bike rental for campus and local trips",
			Type:           "bike_share",
			Location:       "Multiple campus locations",
			Availability:   "24/7",
			Cost:           "low",
			RelatedActions: []string{"active_transport"},
			Tags:           []string{"transport", "bike", "convenient"},
		},
		"local_farmers_market": {
			ID:             "local_farmers_market",
			Name:           "Weekly Farmers Market",
			Description:    "Local, seasonal produce from regional farmers",
			Type:           "farmers_market",
			Location:       "Town Square",
			Availability:   "Saturdays 8am-2pm",
			Cost:           "medium",
			RelatedActions: []string{"local_food"},
			Tags:           []string{"food", "local", "seasonal", "community"},
		},
		"campus_garden": {
			ID:             "campus_garden",
			Name:           "Campus Community Garden",
			Description:    "Plot rental and workshops for growing your own food",
			Type:           "community_garden",
			Location:       "Behind Environmental Science Building",
			Availability:   "Daily dawn-dusk",
			Cost:           "low",
			RelatedActions: []string{"local_food", "food_waste_reduction"},
			Tags:           []string{"gardening", "education", "food", "community"},
		},
		"sustainability_workshops": {
			ID:             "sustainability_workshops",
			Name:           "Sustainability Skill Workshops",
			Description:    "Monthly workshops on repair, cooking, and sustainable living",
			Type:           "workshop",
			Location:       "Various campus locations",
			Availability:   "Monthly events",
			Cost:           "free",
			RelatedActions: []string{"clothing_repair", "food_waste_reduction", "minimal_consumption"},
			Tags:           []string{"education", "skills", "community", "free"},
		},
	}
}
