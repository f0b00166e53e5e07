package products

import "github.com/ecobeehq/ecoscore-backend/internal/boundaries"

func seedProducts() map[string]Product {
	return map[string]Product{
		"1234567890123": {
			Barcode:   "1234567890123",
			Name:      "Organic Quinoa Salad",
			Brand:     "EcoFresh",
			Category:  "plant-based",
			Type:      "food",
			Materials: []string{"organic", "plant-based"},
			Sustainability: map[string]float64{
				boundaries.Climate: 15, boundaries.Biosphere: 10, boundaries.Biogeochemical: 20,
				boundaries.Freshwater: 25, boundaries.Aerosols: 15,
			},
			Certifications: []string{"Organic", "Fair Trade"},
			Packaging:      "recyclable",
		},
		"2345678901234": {
			Barcode:   "2345678901234",
			Name:      "Beef Burger Meal",
			Brand:     "FastFood Co",
			Category:  "meat-heavy",
			Type:      "food",
			Materials: []string{"meat", "processed"},
			Sustainability: map[string]float64{
				boundaries.Climate: 85, boundaries.Biosphere: 80, boundaries.Biogeochemical: 75,
				boundaries.Freshwater: 70, boundaries.Aerosols: 60,
			},
			Certifications: []string{},
			Packaging:      "mixed",
		},
		"3456789012345": {
			Barcode:   "3456789012345",
			Name:      "Oat Milk Latte",
			Brand:     "Plant Café",
			Category:  "drink",
			Type:      "food",
			Materials: []string{"plant-based", "oat"},
			Sustainability: map[string]float64{
				boundaries.Climate: 20, boundaries.Biosphere: 25, boundaries.Biogeochemical: 30,
				boundaries.Freshwater: 35, boundaries.Aerosols: 25,
			},
			Certifications: []string{"Organic"},
			Packaging:      "recyclable",
		},
		"4567890123456": {
			Barcode:   "4567890123456",
			Name:      "Organic Cotton T-Shirt",
			Brand:     "EcoWear",
			Category:  "cotton",
			Type:      "clothing",
			Materials: []string{"organic cotton", "natural"},
			Sustainability: map[string]float64{
				boundaries.Climate: 25, boundaries.Biosphere: 20, boundaries.Biogeochemical: 35,
				boundaries.Freshwater: 40, boundaries.Aerosols: 20,
			},
			Certifications: []string{"GOTS", "Fair Trade"},
			Packaging:      "minimal",
		},
		"5678901234567": {
			Barcode:   "5678901234567",
			Name:      "Polyester Jacket",
			Brand:     "Fashion Fast",
			Category:  "synthetic",
			Type:      "clothing",
			Materials: []string{"polyester", "synthetic"},
			Sustainability: map[string]float64{
				boundaries.Climate: 75, boundaries.Biosphere: 60, boundaries.Biogeochemical: 40,
				boundaries.Freshwater: 30, boundaries.Aerosols: 80,
			},
			Certifications: []string{},
			Packaging:      "plastic",
		},
		"6789012345678": {
			Barcode:   "6789012345678",
			Name:      "Recycled Wool Sweater",
			Brand:     "CircularFashion",
			Category:  "recycled",
			Type:      "clothing",
			Materials: []string{"recycled wool", "natural"},
			Sustainability: map[string]float64{
				boundaries.Climate: 20, boundaries.Biosphere: 25, boundaries.Biogeochemical: 20,
				boundaries.Freshwater: 25, boundaries.Aerosols: 30,
			},
			Certifications: []string{"Recycled", "Responsible Wool"},
			Packaging:      "recyclable",
		},
	}
}
