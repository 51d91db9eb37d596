package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sysgesco/backend/internal/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Handlers are bound lazily by gin, so zero-value controllers are fine
	// for routes the test never invokes.
	Setup(router, Controllers{}, middleware.NewAuthMiddleware(nil))
	return router
}

func TestHealthRouteIsOpen(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/api/v1/students",
		"/api/v1/academic-years",
		"/api/v1/users",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
