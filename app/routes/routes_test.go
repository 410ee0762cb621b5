package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/app/controllers"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	repo := repositories.NewMemoryPostRepository()
	service := services.NewPostService(repo, "key")
	return SetupRoutes(controllers.NewPostController(service, "test-secret"))
}

func TestRouteDispatch(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"index", "GET", "/", http.StatusOK},
		{"new form", "GET", "/add", http.StatusOK},
		{"detail missing post", "GET", "/post/1", http.StatusNotFound},
		{"detail bad id", "GET", "/post/not-a-number", http.StatusNotFound},
		{"method not allowed on delete", "GET", "/delete/1", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRecovererGuardsRequests(t *testing.T) {
	router := newTestRouter()

	// A request the router can serve shouldn't be affected by middleware
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	assert.NotPanics(t, func() { router.ServeHTTP(w, req) })
	assert.Equal(t, http.StatusOK, w.Code)
}
