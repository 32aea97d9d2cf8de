package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pamphlets-api/api/handlers"
	"pamphlets-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct {
	mu    sync.Mutex
	infos int
}

func (l *nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *nopLogger) Error(msg string, fields map[string]interface{}) {}
func (l *nopLogger) Info(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	l.infos++
	l.mu.Unlock()
}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
	assert.Equal(t, Title, api.OpenAPI().Info.Title)
	assert.Equal(t, Version, api.OpenAPI().Info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("OPTIONS", "/render", nil)
	req.Header.Set("Origin", "https://reader.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestNewAPIWithMiddleware_RequestIDAndRateLimit(t *testing.T) {
	logger := &nopLogger{}
	api, router := NewAPIWithMiddleware(APIConfig{
		Logger:     logger,
		RateLimit:  2,
		RateWindow: time.Minute,
	})
	handlers.NewEmbedHandler().RegisterRoutes(api)

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/embeds/youtube?url=https://youtu.be/dQw4w9WgXcQ", nil)
		req.RemoteAddr = "10.1.1.1:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := get()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))

	assert.Equal(t, http.StatusOK, get().Code)
	assert.Equal(t, http.StatusTooManyRequests, get().Code)
	assert.Positive(t, logger.infos)
}

func TestNewAPIWithMiddleware_FlagsDisableRateLimit(t *testing.T) {
	flags := featureflags.NewStaticManager(featureflags.Defaults)
	flags.SetEnabled(featureflags.RateLimitEnabled, false)

	api, router := NewAPIWithMiddleware(APIConfig{
		Flags:      flags,
		RateLimit:  1,
		RateWindow: time.Minute,
	})
	handlers.NewEmbedHandler().RegisterRoutes(api)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/embeds/youtube?url=https://youtu.be/dQw4w9WgXcQ", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
