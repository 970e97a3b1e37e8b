package alerts

import (
	"github.com/roylee0704/gron"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/services"
	"perfumefinder/internal/structures"
	"sync"
)

type SchedulerInterface interface {
	Init()
	Stop()
	RefreshNow() (int, error)
}

// Scheduler periodically copies live catalogue prices into the alert
// snapshots. A zero interval leaves refreshing to the manual endpoint.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	catalogue services.CatalogueServiceInterface
	state     services.UserStateServiceInterface
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	interval := s.config.Alerts.RefreshInterval
	if interval <= 0 {
		s.logger.Infof(providers.TypeApp, "Scheduled alert refresh disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		updated, err := s.RefreshNow()
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while refreshing price alerts: %s", err)
			return
		}
		if updated > 0 {
			s.logger.Infof(providers.TypeApp, "Refreshed %d price alerts", updated)
		}
	})
	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Price alerts refresh every %s", interval)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RefreshNow runs one refresh pass. Runs never overlap.
func (s *Scheduler) RefreshNow() (int, error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	items, err := s.catalogue.GetAll()
	if err != nil {
		return 0, err
	}
	return s.state.RefreshPriceAlerts(items)
}

func NewScheduler(config *structures.Config, logger providers.Logger, catalogue services.CatalogueServiceInterface, state services.UserStateServiceInterface) SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		catalogue: catalogue,
		state:     state,
	}
}
