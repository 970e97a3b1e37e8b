package models

import "time"

type Notes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// PriceInfo is one shop listing for a perfume. LastUpdated comes from the
// dataset and is never recomputed.
type PriceInfo struct {
	Shop        string    `json:"shop"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	URL         string    `json:"url"`
	InStock     bool      `json:"inStock"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Perfume struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Brand         string      `json:"brand"`
	Concentration string      `json:"concentration"`
	Size          string      `json:"size"`
	Image         string      `json:"image"`
	Notes         Notes       `json:"notes"`
	Description   string      `json:"description"`
	Prices        []PriceInfo `json:"prices"`
}

// DisplayName is the "brand name" form used when snapshotting a perfume into
// a price alert.
func (p *Perfume) DisplayName() string {
	if p.Brand == "" {
		return p.Name
	}
	return p.Brand + " " + p.Name
}

type PriceSummary struct {
	Cheapest      *PriceInfo `json:"cheapest"`
	MostExpensive *PriceInfo `json:"mostExpensive"`
	Savings       float64    `json:"savings"`
	AveragePrice  float64    `json:"averagePrice"`
}
