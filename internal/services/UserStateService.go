package services

import (
	"errors"
	"fmt"
	"math/rand"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/models"
	"perfumefinder/internal/providers"
	"perfumefinder/internal/storage/interfaces"
	"perfumefinder/internal/structures"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
)

var (
	ErrAlertNotFound = errors.New("price alert not found")
	ErrPersist       = errors.New("user state not persisted")
	ErrStateLocked   = errors.New("stored user state could not be restored, writes are blocked")
)

const (
	alertIDPrefix    = "alert_"
	unreadableSuffix = ".unreadable"
)

type UserStateServiceInterface interface {
	Restore() error
	Flush() error
	AddFavorite(id string) error
	RemoveFavorite(id string) error
	IsFavorite(id string) bool
	Favorites() []string
	AddPriceAlert(input models.PriceAlertInput) (models.PriceAlert, error)
	RemovePriceAlert(id string) error
	UpdatePriceAlert(id string, currentPrice float64) error
	SetPriceAlertActive(id string, active bool) error
	RefreshPriceAlerts(items []models.Perfume) (int, error)
	PriceAlerts() []models.PriceAlert
	AlertStatuses() []models.AlertStatus
}

// UserStateService owns favorites and price alerts. Every mutation is staged
// on a copy, written through to the blob store, and only then committed, so a
// failed write leaves the previous state in place.
type UserStateService struct {
	mu        sync.RWMutex
	namespace string
	store     interfaces.BlobStoreInterface
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	now       func() time.Time
	entropy   *ulid.MonotonicEntropy
	state     *models.UserState
	// locked is set while the stored blob is neither restored nor set aside;
	// writing then would replace the user's data with the in-memory state.
	locked error
}

func NewUserStateService(conf *structures.Config, store interfaces.BlobStoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) UserStateServiceInterface {
	return newUserStateService(conf.Persistence.Namespace, store, logger, metrics, time.Now)
}

func newUserStateService(namespace string, store interfaces.BlobStoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface, now func() time.Time) *UserStateService {
	if namespace == "" {
		namespace = providers.DefaultNamespace
	}
	return &UserStateService{
		namespace: namespace,
		store:     store,
		logger:    logger,
		metrics:   metrics,
		now:       now,
		entropy:   ulid.Monotonic(rand.New(rand.NewSource(now().UnixNano())), 0),
		state:     models.NewUserState(),
	}
}

// Restore replaces the in-memory state with the stored blob. A missing blob
// leaves the state empty. A blob that cannot be decoded is copied to
// "<namespace>.unreadable" before writes resume; if the blob cannot be read
// or copied, every write fails with ErrStateLocked until a later Restore
// succeeds.
func (s *UserStateService) Restore() error {
	blob, err := s.store.Load(s.namespace)
	if err != nil {
		err = fmt.Errorf("load user state: %w", err)
		s.lock(err)
		return err
	}
	if blob == nil {
		s.unlock()
		s.logger.Infof(providers.TypeApp, "No stored user state under %q, starting empty", s.namespace)
		return nil
	}

	restored, err := decodeUserState(blob)
	if err != nil {
		s.setAside(blob, err)
		return err
	}
	if restored.Version == 0 {
		s.logger.Warnf(providers.TypeApp, "Unversioned user state found, migrating to version %d", models.UserStateVersion)
		restored.Version = models.UserStateVersion
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = restored
	s.locked = nil
	s.updateGauges()
	s.logger.Infof(providers.TypeApp, "Restored %d favorites and %d price alerts", len(restored.Favorites), len(restored.PriceAlerts))
	return nil
}

func decodeUserState(blob []byte) (*models.UserState, error) {
	var restored models.UserState
	if err := json.Unmarshal(blob, &restored); err != nil {
		return nil, fmt.Errorf("decode user state: %w", err)
	}
	if restored.Version != 0 && restored.Version != models.UserStateVersion {
		return nil, fmt.Errorf("unsupported user state version %d", restored.Version)
	}
	if restored.PriceAlerts == nil {
		restored.PriceAlerts = make([]models.PriceAlert, 0)
	}
	restored.Favorites = dedupe(restored.Favorites)
	return &restored, nil
}

// setAside keeps an unreadable blob under a second key so the namespace can
// be reused without losing it.
func (s *UserStateService) setAside(blob []byte, cause error) {
	key := s.namespace + unreadableSuffix
	if err := s.store.Save(key, blob); err != nil {
		s.metrics.IncPersistenceErrors()
		s.lock(fmt.Errorf("%w; set aside: %w", cause, err))
		return
	}
	s.unlock()
	s.logger.Warnf(providers.TypeApp, "Unreadable user state (%s) moved to %q, starting empty", cause, key)
}

func (s *UserStateService) lock(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = fmt.Errorf("%w: %w", ErrStateLocked, cause)
	s.logger.Errorf(providers.TypeApp, "User state writes blocked under %q: %s", s.namespace, cause)
}

func (s *UserStateService) unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = nil
}

// Flush writes the current state again, for shutdown or to retry after a
// failed write.
func (s *UserStateService) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.persist(s.state); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// AddFavorite is idempotent: favorites form a set.
func (s *UserStateService) AddFavorite(id string) error {
	return s.mutate("add favorite", func(next *models.UserState) error {
		for _, fav := range next.Favorites {
			if fav == id {
				return nil
			}
		}
		next.Favorites = append(next.Favorites, id)
		return nil
	})
}

func (s *UserStateService) RemoveFavorite(id string) error {
	return s.mutate("remove favorite", func(next *models.UserState) error {
		kept := next.Favorites[:0]
		for _, fav := range next.Favorites {
			if fav != id {
				kept = append(kept, fav)
			}
		}
		next.Favorites = kept
		return nil
	})
}

func (s *UserStateService) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fav := range s.state.Favorites {
		if fav == id {
			return true
		}
	}
	return false
}

func (s *UserStateService) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.state.Favorites))
	copy(out, s.state.Favorites)
	return out
}

func (s *UserStateService) AddPriceAlert(input models.PriceAlertInput) (models.PriceAlert, error) {
	var created models.PriceAlert
	err := s.mutate("add price alert", func(next *models.UserState) error {
		now := s.now()
		id, err := ulid.New(ulid.Timestamp(now), s.entropy)
		if err != nil {
			return fmt.Errorf("generate alert id: %w", err)
		}
		created = models.PriceAlert{
			ID:           alertIDPrefix + id.String(),
			PerfumeID:    input.PerfumeID,
			PerfumeName:  input.PerfumeName,
			TargetPrice:  input.TargetPrice,
			CurrentPrice: input.CurrentPrice,
			CreatedAt:    now.UTC(),
			Active:       true,
		}
		next.PriceAlerts = append(next.PriceAlerts, created)
		return nil
	})
	if err != nil {
		return models.PriceAlert{}, err
	}
	return created, nil
}

func (s *UserStateService) RemovePriceAlert(id string) error {
	return s.mutate("remove price alert", func(next *models.UserState) error {
		for i, a := range next.PriceAlerts {
			if a.ID == id {
				next.PriceAlerts = append(next.PriceAlerts[:i], next.PriceAlerts[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	})
}

// UpdatePriceAlert replaces the current price snapshot only.
func (s *UserStateService) UpdatePriceAlert(id string, currentPrice float64) error {
	return s.mutate("update price alert", func(next *models.UserState) error {
		a := findAlert(next, id)
		if a == nil {
			return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
		}
		a.CurrentPrice = currentPrice
		return nil
	})
}

func (s *UserStateService) SetPriceAlertActive(id string, active bool) error {
	return s.mutate("set price alert active", func(next *models.UserState) error {
		a := findAlert(next, id)
		if a == nil {
			return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
		}
		a.Active = active
		return nil
	})
}

// RefreshPriceAlerts copies the cheapest in-stock price of each alerted
// perfume into the alert snapshot. Alerts whose perfume is missing or out of
// stock keep their old snapshot. It returns how many alerts changed.
func (s *UserStateService) RefreshPriceAlerts(items []models.Perfume) (int, error) {
	updated := 0
	err := s.mutate("refresh price alerts", func(next *models.UserState) error {
		updated = 0
		for i := range next.PriceAlerts {
			a := &next.PriceAlerts[i]
			p := catalogue.FindByID(items, a.PerfumeID)
			if p == nil {
				continue
			}
			cheapest := catalogue.Cheapest(p.Prices)
			if cheapest == nil || cheapest.Price == a.CurrentPrice {
				continue
			}
			a.CurrentPrice = cheapest.Price
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (s *UserStateService) PriceAlerts() []models.PriceAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PriceAlert, len(s.state.PriceAlerts))
	copy(out, s.state.PriceAlerts)
	return out
}

func (s *UserStateService) AlertStatuses() []models.AlertStatus {
	alerts := s.PriceAlerts()
	out := make([]models.AlertStatus, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, models.NewAlertStatus(a))
	}
	return out
}

func (s *UserStateService) mutate(op string, apply func(next *models.UserState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := apply(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.persist(next); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to persist user state after %s: %s", op, err)
		return fmt.Errorf("%s: %w: %w", op, ErrPersist, err)
	}
	s.state = next
	s.updateGauges()
	return nil
}

// persist must be called with s.mu held.
func (s *UserStateService) persist(state *models.UserState) error {
	if s.locked != nil {
		return s.locked
	}
	start := time.Now()
	blob, err := json.Marshal(state)
	if err != nil {
		s.metrics.IncPersistenceErrors()
		return err
	}
	if err := s.store.Save(s.namespace, blob); err != nil {
		s.metrics.IncPersistenceErrors()
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

// updateGauges must be called with s.mu held.
func (s *UserStateService) updateGauges() {
	s.metrics.SetFavoritesTotal(len(s.state.Favorites))
	s.metrics.SetAlertsTotal(len(s.state.PriceAlerts))
}

func findAlert(state *models.UserState, id string) *models.PriceAlert {
	for i := range state.PriceAlerts {
		if state.PriceAlerts[i].ID == id {
			return &state.PriceAlerts[i]
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
