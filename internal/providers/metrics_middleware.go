package providers

import (
	"net/http"
	"time"
)

// recordingWriter keeps the status the handler chose; 200 when it never
// calls WriteHeader.
type recordingWriter struct {
	http.ResponseWriter
	code int
}

func (rw *recordingWriter) WriteHeader(code int) {
	rw.code = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// MetricsMiddleware wraps the API mux. Each request is counted and timed under
// its URL path, and reads and writes go to separate access logs (GET to
// get.log, POST and DELETE to post.log) at debug level.
func MetricsMiddleware(metrics MetricsProviderInterface, logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &recordingWriter{ResponseWriter: w, code: http.StatusOK}
		began := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(began)

		path := r.URL.Path
		metrics.IncRequestsTotal(path, rw.code)
		metrics.ObserveRequestDuration(path, elapsed)
		logger.Debugf(GetLogTypeByRequestType(r.Method), "%s %s -> %d (%s)", r.Method, r.URL.RequestURI(), rw.code, elapsed)
	})
}
