package services

import (
	"errors"
	"fmt"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/models"
	"perfumefinder/internal/providers"
	"sync"
)

var ErrCatalogueUnavailable = errors.New("catalogue unavailable")

type CatalogueState string

const (
	CatalogueLoading CatalogueState = "loading"
	CatalogueReady   CatalogueState = "ready"
	CatalogueFailed  CatalogueState = "failed"
)

// CatalogueStatus tells a failed load apart from an empty catalogue.
type CatalogueStatus struct {
	State  CatalogueState `json:"state"`
	Reason string         `json:"reason,omitempty"`
	Items  int            `json:"items"`
}

type CatalogueServiceInterface interface {
	Load() error
	Status() CatalogueStatus
	GetAll() ([]models.Perfume, error)
	GetByID(id string) (*models.Perfume, error)
	Search(query string) ([]models.Perfume, error)
	Suggestions(query string) ([]string, error)
}

type CatalogueService struct {
	mu      sync.RWMutex
	source  catalogue.Source
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	items   []models.Perfume
	status  CatalogueStatus
}

func NewCatalogueService(source catalogue.Source, logger providers.Logger, metrics providers.MetricsProviderInterface) CatalogueServiceInterface {
	return &CatalogueService{
		source:  source,
		logger:  logger,
		metrics: metrics,
		status:  CatalogueStatus{State: CatalogueLoading},
	}
}

// Load reads the whole catalogue once. There is no retry; a failure stays
// visible through Status until the process restarts.
func (cs *CatalogueService) Load() error {
	items, err := cs.source.GetAll()

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err != nil {
		cs.items = nil
		cs.status = CatalogueStatus{State: CatalogueFailed, Reason: err.Error()}
		cs.logger.Errorf(providers.TypeApp, "Catalogue load failed: %s", err)
		return fmt.Errorf("%w: %w", ErrCatalogueUnavailable, err)
	}

	cs.items = items
	cs.status = CatalogueStatus{State: CatalogueReady, Items: len(items)}
	cs.metrics.SetCatalogueItems(len(items))
	cs.logger.Infof(providers.TypeApp, "Catalogue loaded: %d perfumes", len(items))
	return nil
}

func (cs *CatalogueService) Status() CatalogueStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.status
}

func (cs *CatalogueService) ready() ([]models.Perfume, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	switch cs.status.State {
	case CatalogueReady:
		return cs.items, nil
	case CatalogueFailed:
		return nil, fmt.Errorf("%w: %s", ErrCatalogueUnavailable, cs.status.Reason)
	default:
		return nil, fmt.Errorf("%w: still loading", ErrCatalogueUnavailable)
	}
}

func (cs *CatalogueService) GetAll() ([]models.Perfume, error) {
	return cs.ready()
}

// GetByID returns nil, nil for an unknown id.
func (cs *CatalogueService) GetByID(id string) (*models.Perfume, error) {
	items, err := cs.ready()
	if err != nil {
		return nil, err
	}
	return catalogue.FindByID(items, id), nil
}

func (cs *CatalogueService) Search(query string) ([]models.Perfume, error) {
	items, err := cs.ready()
	if err != nil {
		return nil, err
	}
	return catalogue.Search(items, query), nil
}

func (cs *CatalogueService) Suggestions(query string) ([]string, error) {
	items, err := cs.ready()
	if err != nil {
		return nil, err
	}
	return catalogue.Suggestions(items, query), nil
}
