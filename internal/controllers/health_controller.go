package controllers

import (
	"fmt"
	"net/http"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"
	"time"
)

type HealthController struct {
	catalogue services.CatalogueServiceInterface
	state     services.UserStateServiceInterface
	cache     providers.CacheProviderInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string                   `json:"status"`
	Uptime        string                   `json:"uptime"`
	UptimeSeconds float64                  `json:"uptime_seconds"`
	Catalogue     services.CatalogueStatus `json:"catalogue"`
	Favorites     int                      `json:"favorites"`
	PriceAlerts   int                      `json:"price_alerts"`
	Cache         providers.CacheStats     `json:"cache"`
}

// Health reports "degraded" while the catalogue is not ready; the process is
// still serving user state in that case.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	status := hc.catalogue.Status()
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Catalogue:     status,
		Favorites:     len(hc.state.Favorites()),
		PriceAlerts:   len(hc.state.PriceAlerts()),
		Cache:         hc.cache.Stats(),
	}
	if status.State != services.CatalogueReady {
		resp.Status = "degraded"
	}

	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(catalogue services.CatalogueServiceInterface, state services.UserStateServiceInterface, cache providers.CacheProviderInterface) *HealthController {
	return &HealthController{
		catalogue: catalogue,
		state:     state,
		cache:     cache,
		startTime: time.Now(),
	}
}
