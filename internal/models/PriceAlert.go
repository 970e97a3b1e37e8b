package models

import "time"

type PriceAlert struct {
	ID           string    `json:"id"`
	PerfumeID    string    `json:"perfumeId"`
	PerfumeName  string    `json:"perfumeName"`
	TargetPrice  float64   `json:"targetPrice"`
	CurrentPrice float64   `json:"currentPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	Active       bool      `json:"active"`
}

// PriceAlertInput carries the user supplied part of a new alert. The store
// fills in ID, CreatedAt and Active.
type PriceAlertInput struct {
	PerfumeID    string  `json:"perfumeId"`
	PerfumeName  string  `json:"perfumeName"`
	TargetPrice  float64 `json:"targetPrice"`
	CurrentPrice float64 `json:"currentPrice"`
}

// ShouldNotify is derived on every call and never stored. Dismissed alerts
// never notify.
func (a *PriceAlert) ShouldNotify() bool {
	return a.Active && a.CurrentPrice <= a.TargetPrice
}

type AlertStatus struct {
	Alert            PriceAlert `json:"alert"`
	ShouldNotify     bool       `json:"shouldNotify"`
	PriceChange      float64    `json:"priceChange"`
	PercentageChange float64    `json:"percentageChange"`
}

func NewAlertStatus(a PriceAlert) AlertStatus {
	status := AlertStatus{
		Alert:        a,
		ShouldNotify: a.ShouldNotify(),
		PriceChange:  a.CurrentPrice - a.TargetPrice,
	}
	if a.TargetPrice != 0 {
		status.PercentageChange = (a.CurrentPrice - a.TargetPrice) / a.TargetPrice * 100
	}
	return status
}
