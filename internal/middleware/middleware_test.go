package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fuelform/internal/webapp"
)

func newEngine(handlers ...gin.HandlerFunc) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(handlers...)
	r.Any("/probe", func(c *gin.Context) {
		seen = webapp.SessionFrom(c.Request.Context())
		c.String(http.StatusOK, GetRequestID(c))
	})
	return r, &seen
}

func TestSession_FromHeader(t *testing.T) {
	r, seen := newEngine(Session())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Session-ID", "abc")
	req.AddCookie(&http.Cookie{Name: "webapp_session", Value: "cookie"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", *seen)
	assert.Empty(t, w.Result().Cookies())
}

func TestSession_FromCookie(t *testing.T) {
	r, seen := newEngine(Session())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "webapp_session", Value: "cookie"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "cookie", *seen)
}

func TestSession_IssuesNew(t *testing.T) {
	r, seen := newEngine(Session())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.NotEmpty(t, *seen)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "webapp_session", cookies[0].Name)
	assert.Equal(t, *seen, cookies[0].Value)
}

func TestRequestID(t *testing.T) {
	r, _ := newEngine(RequestID(), Logger(zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "rid-1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
}

func TestIdempotency_PassThroughWithoutClient(t *testing.T) {
	r, _ := newEngine(Idempotency(nil))

	req := httptest.NewRequest(http.MethodPost, "/probe", nil)
	req.Header.Set("Idempotency-Key", "k1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Idempotent-Replayed"))
}
