package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, incoming)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an invalid incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}

func TestLoggerFallsBackWithoutRequestLogger(t *testing.T) {
	router := newTestRouter()
	var entry *log.Entry
	router.GET("/ping", func(c *gin.Context) {
		entry = Logger(c)
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotNil(t, entry)
	assert.Empty(t, entry.Data)
}

func TestRequestLoggerCarriesRequestFields(t *testing.T) {
	router := newTestRouter(RequestID(), RequestLogger(quietLogger()))
	var entry *log.Entry
	router.GET("/pizza", func(c *gin.Context) {
		entry = Logger(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizza", nil))

	require.NotNil(t, entry)
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/pizza", entry.Data["path"])
}

func TestRecovery(t *testing.T) {
	router := newTestRouter(RequestLogger(quietLogger()), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("database on fire")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.GenericErrorMessage, body.Message)
	assert.NotContains(t, w.Body.String(), "database on fire")
}

func TestSharedCache(t *testing.T) {
	router := newTestRouter(RequestLogger(quietLogger()), Recovery(), SharedCache(time.Hour))
	router.GET("/pizza", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": 1}) })
	router.GET("/empty", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not Found"))
	})
	router.GET("/boom", func(c *gin.Context) { panic("store unavailable") })

	testCases := []struct {
		path     string
		status   int
		expected string
	}{
		{path: "/pizza", status: http.StatusOK, expected: "public, s-maxage=3600"},
		{path: "/empty", status: http.StatusOK, expected: "public, s-maxage=3600"},
		{path: "/missing", status: http.StatusNotFound, expected: ""},
		{path: "/boom", status: http.StatusInternalServerError, expected: ""},
	}
	for _, tt := range testCases {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("Cache-Control"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests over the burst", func(t *testing.T) {
		router := newTestRouter(RateLimit(0.001, 2))
		router.GET("/pizza", func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizza", nil))
			codes = append(codes, w.Code)
			if w.Code == http.StatusTooManyRequests {
				assert.Equal(t, "1", w.Header().Get("Retry-After"))
				assert.Contains(t, w.Body.String(), models.ErrRateLimited)
			}
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("non-positive limit disables limiting", func(t *testing.T) {
		router := newTestRouter(RateLimit(0, 0))
		router.GET("/pizza", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizza", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestMetricsPassesThrough(t *testing.T) {
	router := newTestRouter(Metrics())
	router.GET("/pizza/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizza/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
