package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_CapturesStatusAndEndpoint(t *testing.T) {
	metrics := newTestMetrics()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	mw := MetricsMiddleware(metrics, &testLogger{}, handler)

	req := httptest.NewRequest(http.MethodPost, "/favorites", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, "/favorites", metrics.requestEndpoint)
	assert.Equal(t, http.StatusCreated, metrics.requestStatus)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsMiddleware_DefaultStatus200(t *testing.T) {
	metrics := newTestMetrics()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mw := MetricsMiddleware(metrics, &testLogger{}, handler)

	req := httptest.NewRequest(http.MethodGet, "/perfumes?q=dior", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, metrics.requestStatus)
	assert.Equal(t, "/perfumes", metrics.requestEndpoint)
}

func TestMetricsMiddleware_WritesAccessLine(t *testing.T) {
	logger := &testLogger{}
	mw := MetricsMiddleware(newTestMetrics(), logger, http.NotFoundHandler())

	mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/perfume?id=9", nil))

	require.Len(t, logger.debug, 1)
}

func TestRecordingWriter_WriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &recordingWriter{ResponseWriter: rr, code: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, rw.code)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, rr, rw.Unwrap())
}
