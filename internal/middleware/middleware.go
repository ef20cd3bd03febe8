package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-Id"

	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// RequestID reuses a valid incoming X-Request-Id or generates a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger attaches a request scoped logrus entry and logs every completed request
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := logger.WithFields(log.Fields{
			"request_id": c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Set(loggerKey, entry)

		c.Next()

		entry.WithFields(log.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"bytes":   c.Writer.Size(),
		}).Info("request completed")
	}
}

// Logger returns the entry set by RequestLogger, or a bare entry on the standard logger.
func Logger(c *gin.Context) *log.Entry {
	if value, ok := c.Get(loggerKey); ok {
		if entry, ok := value.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}

// Recovery answers a panicking handler with the generic 500 body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicRecoveries.Inc()
				Logger(c).WithField("panic", fmt.Sprintf("%v", r)).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					models.NewAPIError(models.ErrInternalServer, models.GenericErrorMessage))
			}
		}()
		c.Next()
	}
}

// SharedCache marks successful responses as cacheable by shared caches for maxAge.
// Error responses never carry the hint.
func SharedCache(maxAge time.Duration) gin.HandlerFunc {
	value := fmt.Sprintf("public, s-maxage=%d", int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Writer = &cacheHintWriter{ResponseWriter: c.Writer, value: value}
		c.Next()
	}
}

// cacheHintWriter decides on the Cache-Control header once the status is known.
type cacheHintWriter struct {
	gin.ResponseWriter
	value string
}

func (w *cacheHintWriter) WriteHeader(code int) {
	w.apply(code)
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheHintWriter) WriteHeaderNow() {
	w.apply(w.Status())
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cacheHintWriter) Write(data []byte) (int, error) {
	w.apply(w.Status())
	return w.ResponseWriter.Write(data)
}

func (w *cacheHintWriter) WriteString(s string) (int, error) {
	w.apply(w.Status())
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheHintWriter) apply(code int) {
	if w.Written() {
		return
	}
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		w.Header().Set("Cache-Control", w.value)
	} else {
		w.Header().Del("Cache-Control")
	}
}
