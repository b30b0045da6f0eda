package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_PanicYieldsGenericBody(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(testLogger()))
	router.GET("/boom", func(*gin.Context) {
		panic("something deep inside went sideways")
	})

	rec := doRequest(router, http.MethodGet, "/boom")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error": "Internal Server Error", "message": "An unexpected error occurred"}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "sideways", "panic detail must never leak")
}

func TestRecovery_PanicWithArbitraryValue(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(testLogger()))
	router.GET("/boom", func(*gin.Context) {
		panic(struct{ Reason string }{"unclassified failure"})
	})

	rec := doRequest(router, http.MethodGet, "/boom")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Internal Server Error"`)
}

func corsRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := corsRouter([]string{"https://pos.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://pos.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://pos.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router := corsRouter([]string{"https://pos.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	router := corsRouter([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://pos.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}
