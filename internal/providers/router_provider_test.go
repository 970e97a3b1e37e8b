package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})
}

func serve(h http.Handler, method string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, "/test", nil))
	return rr
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler("ok"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/test", routes[0].Url)
}

func TestRouterProvider_SameURLDifferentMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/favorites", dummyHandler("list"))
	rp.Post("/favorites", dummyHandler("add"))
	rp.Delete("/favorites", dummyHandler("remove"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)

	h := routes[0].Handler
	assert.Equal(t, "list", serve(h, http.MethodGet).Body.String())
	assert.Equal(t, "add", serve(h, http.MethodPost).Body.String())
	assert.Equal(t, "remove", serve(h, http.MethodDelete).Body.String())
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodPut).Code)
}

func TestRouterProvider_KeepsRegistrationOrder(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", dummyHandler("a"))
	rp.Post("/b", dummyHandler("b"))
	rp.Get("/c", dummyHandler("c"))
	rp.Post("/a", dummyHandler("a2"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/a", routes[0].Url)
	assert.Equal(t, "/b", routes[1].Url)
	assert.Equal(t, "/c", routes[2].Url)
}

func TestRouterProvider_GetRouteRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler("ok"))

	assert.Equal(t, http.StatusMethodNotAllowed, serve(rp.GetRoutes()[0].Handler, http.MethodPost).Code)
}

func TestRouterProvider_PostRouteRejectsGet(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/test", dummyHandler("ok"))

	assert.Equal(t, http.StatusMethodNotAllowed, serve(rp.GetRoutes()[0].Handler, http.MethodGet).Code)
}
