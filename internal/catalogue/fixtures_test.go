package catalogue

import "perfumefinder/internal/models"

func fixtureItems() []models.Perfume {
	return []models.Perfume{
		{
			ID:          "1",
			Name:        "Sauvage",
			Brand:       "Dior",
			Description: "Fresh spicy",
			Notes:       models.Notes{Top: []string{"Bergamot"}, Middle: []string{"Pepper"}, Base: []string{"Ambroxan"}},
		},
		{
			ID:          "2",
			Name:        "Bleu de Chanel",
			Brand:       "Chanel",
			Description: "Woody aromatic",
			Notes:       models.Notes{Top: []string{"Grapefruit"}, Middle: []string{"Ginger"}, Base: []string{"Sandalwood"}},
		},
		{
			ID:          "3",
			Name:        "Coco Mademoiselle",
			Brand:       "Chanel",
			Description: "Oriental floral",
			Notes:       models.Notes{Top: []string{"Orange"}, Middle: []string{"Rose"}, Base: []string{"Patchouli"}},
		},
		{
			ID:          "4",
			Name:        "Miss Dior",
			Brand:       "Dior",
			Description: "Floral chypre",
			Notes:       models.Notes{Top: []string{"Mandarin"}, Middle: []string{"Rose"}, Base: []string{"Musk"}},
		},
	}
}

func listing(shop string, price float64, inStock bool) models.PriceInfo {
	return models.PriceInfo{Shop: shop, Price: price, Currency: "EUR", URL: "https://" + shop + ".com", InStock: inStock}
}
