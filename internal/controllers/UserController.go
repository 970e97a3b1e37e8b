package controllers

import (
	"errors"
	"net/http"
	"perfumefinder/internal/alerts"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/models"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// UserController serves favorites and price alerts. Its responses are never
// cached because every mutation changes them.
type UserController struct {
	logger    providers.Logger
	state     services.UserStateServiceInterface
	catalogue services.CatalogueServiceInterface
	refresher alerts.SchedulerInterface
}

type favoriteRequest struct {
	ID string `json:"id"`
}

type favoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

type favoritesResponse struct {
	IDs      []string         `json:"ids"`
	Perfumes []models.Perfume `json:"perfumes"`
}

// createAlertRequest keeps the prices optional so an explicit 0 target
// ("tell me when it is free") is not mistaken for a missing one.
type createAlertRequest struct {
	PerfumeID    string   `json:"perfumeId"`
	PerfumeName  string   `json:"perfumeName"`
	TargetPrice  *float64 `json:"targetPrice"`
	CurrentPrice *float64 `json:"currentPrice"`
}

type refreshResponse struct {
	Updated int `json:"updated"`
}

func NewUserController(logger providers.Logger, state services.UserStateServiceInterface, catalogue services.CatalogueServiceInterface, refresher alerts.SchedulerInterface) *UserController {
	return &UserController{
		logger:    logger,
		state:     state,
		catalogue: catalogue,
		refresher: refresher,
	}
}

// ListFavorites still answers with the ids when the catalogue is down; the
// perfume list is then empty.
func (uc *UserController) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ids := uc.state.Favorites()
	resp := favoritesResponse{IDs: ids, Perfumes: make([]models.Perfume, 0)}
	if items, err := uc.catalogue.GetAll(); err == nil {
		resp.Perfumes = catalogue.FilterByIDs(items, ids)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (uc *UserController) IsFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	writeJSON(w, http.StatusOK, favoriteResponse{ID: id, Favorite: uc.state.IsFavorite(id)})
}

func (uc *UserController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ID == "" {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := uc.state.AddFavorite(payload.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, favoriteResponse{ID: payload.ID, Favorite: true})
}

func (uc *UserController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := uc.state.RemoveFavorite(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (uc *UserController) ListAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, uc.state.AlertStatuses())
}

// CreateAlert fills a missing name, current price or target from the
// catalogue the way the alert dialog pre-fills them. Only absent fields are
// filled; an explicit 0 is kept.
func (uc *UserController) CreateAlert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PerfumeID == "" {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if (req.TargetPrice != nil && *req.TargetPrice < 0) || (req.CurrentPrice != nil && *req.CurrentPrice < 0) {
		writeError(w, http.StatusBadRequest, "prices must not be negative")
		return
	}

	input := models.PriceAlertInput{PerfumeID: req.PerfumeID, PerfumeName: req.PerfumeName}
	if req.CurrentPrice != nil {
		input.CurrentPrice = *req.CurrentPrice
	}
	if req.TargetPrice != nil {
		input.TargetPrice = *req.TargetPrice
	}

	p, err := uc.catalogue.GetByID(req.PerfumeID)
	if err != nil && !errors.Is(err, services.ErrCatalogueUnavailable) {
		writeServiceError(w, err)
		return
	}
	if p != nil {
		if input.PerfumeName == "" {
			input.PerfumeName = p.DisplayName()
		}
		if req.CurrentPrice == nil {
			if cheapest := catalogue.Cheapest(p.Prices); cheapest != nil {
				input.CurrentPrice = cheapest.Price
			}
		}
		if req.TargetPrice == nil {
			input.TargetPrice = catalogue.SuggestedTargetPrice(input.CurrentPrice)
		}
	}

	alert, err := uc.state.AddPriceAlert(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	uc.logger.Infof(providers.TypePost, "Price alert %s created for %s at %.2f", alert.ID, alert.PerfumeID, alert.TargetPrice)
	writeJSON(w, http.StatusCreated, models.NewAlertStatus(alert))
}

func (uc *UserController) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := uc.state.RemovePriceAlert(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (uc *UserController) UpdateAlertPrice(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	raw := r.URL.Query().Get("currentPrice")
	price, err := cast.ToFloat64E(raw)
	if id == "" || raw == "" || err != nil || price < 0 {
		writeError(w, http.StatusBadRequest, "id and a non-negative currentPrice are required")
		return
	}
	if err := uc.state.UpdatePriceAlert(id, price); err != nil {
		writeServiceError(w, err)
		return
	}
	uc.writeAlert(w, id)
}

func (uc *UserController) SetAlertActive(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	raw := r.URL.Query().Get("active")
	active, err := cast.ToBoolE(raw)
	if id == "" || raw == "" || err != nil {
		writeError(w, http.StatusBadRequest, "id and active are required")
		return
	}
	if err := uc.state.SetPriceAlertActive(id, active); err != nil {
		writeServiceError(w, err)
		return
	}
	uc.writeAlert(w, id)
}

func (uc *UserController) RefreshAlerts(w http.ResponseWriter, r *http.Request) {
	updated, err := uc.refresher.RefreshNow()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Updated: updated})
}

func (uc *UserController) writeAlert(w http.ResponseWriter, id string) {
	for _, a := range uc.state.PriceAlerts() {
		if a.ID == id {
			writeJSON(w, http.StatusOK, models.NewAlertStatus(a))
			return
		}
	}
	writeError(w, http.StatusNotFound, services.ErrAlertNotFound.Error())
}
