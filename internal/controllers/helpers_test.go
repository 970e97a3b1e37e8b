package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"perfumefinder/internal/alerts"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/models"
	"perfumefinder/internal/services"
	"perfumefinder/internal/structures"
	"perfumefinder/internal/testutil"
	"perfumefinder/internal/trust"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type brokenSource struct{}

func (brokenSource) GetAll() ([]models.Perfume, error)        { return nil, errors.New("dataset missing") }
func (brokenSource) GetByID(string) (*models.Perfume, error) { return nil, errors.New("dataset missing") }

type testEnv struct {
	catalogue services.CatalogueServiceInterface
	state     services.UserStateServiceInterface
	store     *testutil.MockBlobStore
	cache     *testutil.MockCache
	catCtrl   *CatalogueController
	userCtrl  *UserController
}

func testConfig() *structures.Config {
	return &structures.Config{
		Trust:       structures.TrustConfig{TrustedDomains: []string{"notino", "douglas", "sephora", "perfumesclub", "harrods"}},
		Persistence: structures.Persistence{Namespace: "test-storage"},
	}
}

func newTestEnv(t *testing.T, source catalogue.Source) *testEnv {
	t.Helper()
	conf := testConfig()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()

	cat := services.NewCatalogueService(source, logger, metrics)
	_ = cat.Load()

	store := testutil.NewMockBlobStore()
	state := services.NewUserStateService(conf, store, logger, metrics)
	cache := testutil.NewMockCache()

	return &testEnv{
		catalogue: cat,
		state:     state,
		store:     store,
		cache:     cache,
		catCtrl:   NewCatalogueController(logger, cat, trust.NewScorer(conf), cache),
		userCtrl:  NewUserController(logger, state, cat, alerts.NewScheduler(conf, logger, cat, state)),
	}
}

func newReadyEnv(t *testing.T) *testEnv {
	return newTestEnv(t, catalogue.NewSource(&structures.Config{}))
}

func do(h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
