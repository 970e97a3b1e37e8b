package catalogue

import (
	"math"
	"perfumefinder/internal/models"
	"sort"
)

func inStock(listings []models.PriceInfo) []models.PriceInfo {
	result := make([]models.PriceInfo, 0, len(listings))
	for _, l := range listings {
		if l.InStock {
			result = append(result, l)
		}
	}
	return result
}

// Cheapest returns the first in-stock listing with the lowest price, or nil
// when nothing is in stock.
func Cheapest(listings []models.PriceInfo) *models.PriceInfo {
	return pick(listings, func(candidate, best float64) bool { return candidate < best })
}

// MostExpensive returns the first in-stock listing with the highest price,
// or nil when nothing is in stock.
func MostExpensive(listings []models.PriceInfo) *models.PriceInfo {
	return pick(listings, func(candidate, best float64) bool { return candidate > best })
}

func pick(listings []models.PriceInfo, better func(candidate, best float64) bool) *models.PriceInfo {
	var best *models.PriceInfo
	for i := range listings {
		if !listings[i].InStock {
			continue
		}
		if best == nil || better(listings[i].Price, best.Price) {
			l := listings[i]
			best = &l
		}
	}
	return best
}

// Savings is zero, not absent, when nothing is in stock.
func Savings(listings []models.PriceInfo) float64 {
	lo, hi := Cheapest(listings), MostExpensive(listings)
	if lo == nil || hi == nil {
		return 0
	}
	return hi.Price - lo.Price
}

// Compare aggregates in-stock listings only.
func Compare(listings []models.PriceInfo) models.PriceSummary {
	stocked := inStock(listings)
	if len(stocked) == 0 {
		return models.PriceSummary{}
	}

	var sum float64
	for _, l := range stocked {
		sum += l.Price
	}

	summary := models.PriceSummary{
		Cheapest:      Cheapest(stocked),
		MostExpensive: MostExpensive(stocked),
		AveragePrice:  sum / float64(len(stocked)),
	}
	summary.Savings = summary.MostExpensive.Price - summary.Cheapest.Price
	return summary
}

// SortByPrice returns a copy ordered by ascending price; equal prices keep
// their input order.
func SortByPrice(listings []models.PriceInfo) []models.PriceInfo {
	sorted := make([]models.PriceInfo, len(listings))
	copy(sorted, listings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

// PriceChangePercentage returns 0 for a zero base price.
func PriceChangePercentage(oldPrice, newPrice float64) float64 {
	if oldPrice == 0 {
		return 0
	}
	return (newPrice - oldPrice) / oldPrice * 100
}

// SuggestedTargetPrice proposes a target ten percent under the current price,
// rounded down, for prices above 10.
func SuggestedTargetPrice(current float64) float64 {
	if current > 10 {
		return math.Floor(current * 0.9)
	}
	return current
}
