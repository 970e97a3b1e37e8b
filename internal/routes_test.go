package internal

import (
	"net/http"
	"net/http/httptest"
	"perfumefinder/internal/alerts"
	"perfumefinder/internal/catalogue"
	"perfumefinder/internal/controllers"
	"perfumefinder/internal/services"
	"perfumefinder/internal/structures"
	"perfumefinder/internal/testutil"
	"perfumefinder/internal/trust"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeTestDeps struct {
	conf      *structures.Config
	logger    *testutil.MockLogger
	metrics   *testutil.MockMetrics
	store     *testutil.MockBlobStore
	catalogue services.CatalogueServiceInterface
	state     services.UserStateServiceInterface
}

func newRouteTestDeps() *routeTestDeps {
	conf := &structures.Config{
		AppName:     "PerfumeFinder",
		WebServer:   structures.Server{Host: "127.0.0.1", Port: 0},
		Trust:       structures.TrustConfig{TrustedDomains: []string{"notino", "sephora", "douglas"}},
		Persistence: structures.Persistence{Namespace: "route-test"},
	}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	store := testutil.NewMockBlobStore()
	return &routeTestDeps{
		conf:      conf,
		logger:    logger,
		metrics:   metrics,
		store:     store,
		catalogue: services.NewCatalogueService(catalogue.NewSource(conf), logger, metrics),
		state:     services.NewUserStateService(conf, store, logger, metrics),
	}
}

func (d *routeTestDeps) router() []structures.Route {
	cc := controllers.NewCatalogueController(d.logger, d.catalogue, trust.NewScorer(d.conf), testutil.NewMockCache())
	uc := controllers.NewUserController(d.logger, d.state, d.catalogue, d.scheduler())
	return InitRoutes(cc, uc).GetRoutes()
}

func (d *routeTestDeps) scheduler() alerts.SchedulerInterface {
	return alerts.NewScheduler(d.conf, d.logger, d.catalogue, d.state)
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	routes := newRouteTestDeps().router()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Equal(t, []string{
		"/perfumes", "/perfume", "/suggestions", "/prices", "/safety",
		"/favorites", "/favorite",
		"/alerts", "/alerts/price", "/alerts/active", "/alerts/refresh",
	}, urls)
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := newRouteTestDeps().router()
	byURL := make(map[string]http.Handler, len(routes))
	for _, r := range routes {
		byURL[r.Url] = r.Handler
	}

	cases := []struct {
		url    string
		method string
	}{
		{"/perfumes", http.MethodPost},
		{"/safety", http.MethodDelete},
		{"/favorite", http.MethodPost},
		{"/alerts/price", http.MethodGet},
		{"/alerts/refresh", http.MethodGet},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		byURL[c.url].ServeHTTP(rr, httptest.NewRequest(c.method, c.url, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, c.method+" "+c.url)
	}
}

func newTestApp(t *testing.T, d *routeTestDeps) *App {
	t.Helper()
	cache := testutil.NewMockCache()
	cc := controllers.NewCatalogueController(d.logger, d.catalogue, trust.NewScorer(d.conf), cache)
	scheduler := d.scheduler()
	uc := controllers.NewUserController(d.logger, d.state, d.catalogue, scheduler)
	hc := controllers.NewHealthController(d.catalogue, d.state, cache)

	app, err := NewApp(hc, d.catalogue, d.state, scheduler, d.store, d.conf, d.logger, InitRoutes(cc, uc), d.metrics)
	require.NoError(t, err)
	return app
}

func TestNewApp_ServesAPIAndHealth(t *testing.T) {
	d := newRouteTestDeps()
	d.store.Data["route-test"] = []byte(`{"version":1,"favorites":["3"],"priceAlerts":[]}`)
	app := newTestApp(t, d)

	srv := httptest.NewServer(app.WebServer.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/favorite?id=3")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, d.state.IsFavorite("3"), "state restored on startup")

	resp, err = http.Post(srv.URL+"/favorites", "application/json", strings.NewReader(`{"id":"5"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Equal(t, 1, d.metrics.Requests["/favorites"])
	assert.Equal(t, 0, d.metrics.Requests["/health"], "health is not instrumented")
	assert.Equal(t, 6, d.metrics.CatalogueItems)
}

func TestNewApp_CorruptStateIsNotFatal(t *testing.T) {
	d := newRouteTestDeps()
	d.store.Data["route-test"] = []byte(`garbage`)

	app := newTestApp(t, d)
	assert.NotNil(t, app)
	assert.Empty(t, d.state.Favorites())
	assert.GreaterOrEqual(t, d.logger.Count("error"), 1)
	assert.Equal(t, []byte(`garbage`), d.store.Data["route-test.unreadable"])
}
