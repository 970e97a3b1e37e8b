package controllers

import (
	"net/http"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/models"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"
	"perfumefinder/internal/trust"

	json "github.com/goccy/go-json"
)

type CatalogueController struct {
	logger  providers.Logger
	service services.CatalogueServiceInterface
	scorer  trust.ScorerInterface
	cache   providers.CacheProviderInterface
}

type scoredListing struct {
	Listing models.PriceInfo    `json:"listing"`
	Safety  models.SafetyResult `json:"safety"`
}

type perfumeDetail struct {
	Perfume  models.Perfume      `json:"perfume"`
	Summary  models.PriceSummary `json:"summary"`
	Listings []scoredListing     `json:"listings"`
}

func NewCatalogueController(logger providers.Logger, service services.CatalogueServiceInterface, scorer trust.ScorerInterface, cache providers.CacheProviderInterface) *CatalogueController {
	return &CatalogueController{
		logger:  logger,
		service: service,
		scorer:  scorer,
		cache:   cache,
	}
}

// serveFromCacheOrCompute caches successful responses only. The catalogue
// never changes while the process runs, so entries only age out by TTL.
func (cc *CatalogueController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := cc.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		cc.logger.Debugf(providers.TypeGet, "%s: %s", cacheKey, err)
		writeServiceError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cc.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

func (cc *CatalogueController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	cc.serveFromCacheOrCompute(w, "search:"+q, func() (any, error) {
		return cc.service.Search(q)
	})
}

func (cc *CatalogueController) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	cc.serveFromCacheOrCompute(w, "suggest:"+q, func() (any, error) {
		return cc.service.Suggestions(q)
	})
}

func (cc *CatalogueController) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	cc.serveFromCacheOrCompute(w, "detail:"+id, func() (any, error) {
		p, err := cc.lookup(id)
		if err != nil {
			return nil, err
		}

		sorted := catalogue.SortByPrice(p.Prices)
		listings := make([]scoredListing, 0, len(sorted))
		for _, l := range sorted {
			listings = append(listings, scoredListing{Listing: l, Safety: cc.scorer.Check(l.URL)})
		}
		return perfumeDetail{
			Perfume:  *p,
			Summary:  catalogue.Compare(p.Prices),
			Listings: listings,
		}, nil
	})
}

func (cc *CatalogueController) Prices(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	cc.serveFromCacheOrCompute(w, "prices:"+id, func() (any, error) {
		p, err := cc.lookup(id)
		if err != nil {
			return nil, err
		}
		return catalogue.Compare(p.Prices), nil
	})
}

func (cc *CatalogueController) Safety(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	cc.serveFromCacheOrCompute(w, "safety:"+u, func() (any, error) {
		return cc.scorer.Check(u), nil
	})
}

func (cc *CatalogueController) lookup(id string) (*models.Perfume, error) {
	p, err := cc.service.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errNotFound
	}
	return p, nil
}
