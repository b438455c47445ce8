package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	old := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = old })
	return &buf
}

func loggedLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())
	return r
}

func TestLoggerAccessLine(t *testing.T) {
	buf := captureLog(t)

	r := newLoggedRouter()
	r.GET("/songs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/songs?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	line := loggedLine(t, buf)
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "request completed", line["message"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/songs?page=2", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.NotEmpty(t, line["request_id"])
	assert.NotZero(t, line["bytes"])
}

func TestLoggerSeverityTracksStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"client error logs at warn", http.StatusNotFound, "warn"},
		{"server error logs at error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			r := newLoggedRouter()
			r.GET("/fail", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			line := loggedLine(t, buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, float64(tt.status), line["status"])
		})
	}
}

func TestLoggerCarriesIncomingRequestID(t *testing.T) {
	buf := captureLog(t)

	r := newLoggedRouter()
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	line := loggedLine(t, buf)
	assert.Equal(t, "trace-me-123", line["request_id"])
	assert.Equal(t, "trace-me-123", w.Header().Get("X-Request-ID"))
}
