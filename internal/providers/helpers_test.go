package providers

import "time"

// local mocks to avoid an import cycle with testutil

type testLogger struct {
	debug []string
}

func (m *testLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Debugf(_ TypeEnum, format string, _ ...interface{}) {
	m.debug = append(m.debug, format)
}
func (m *testLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *testLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Close()                                        {}

type testMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            map[string]int
	misses          map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *testMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *testMetrics) IncCacheHits(kind string)                         { m.hits[kind]++ }
func (m *testMetrics) IncCacheMisses(kind string)                       { m.misses[kind]++ }
func (m *testMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *testMetrics) IncPersistenceErrors()                            {}
func (m *testMetrics) SetFavoritesTotal(_ int)                          {}
func (m *testMetrics) SetAlertsTotal(_ int)                             {}
func (m *testMetrics) SetCatalogueItems(_ int)                          {}
