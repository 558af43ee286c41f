package handlers

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observedRequest struct {
	method string
	route  string
	code   int
}

type recordingRequestObserver struct {
	mu       sync.Mutex
	requests []observedRequest
}

func (o *recordingRequestObserver) ObserveRequest(method, route string, code int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, observedRequest{method: method, route: route, code: code})
}

func TestRequestLogger(t *testing.T) {
	logger, hook := newNullLogger()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/status/:code", NewHTTPPlaygroundHandlers(0).StatusCodeHandler)

	perform(r, http.MethodGet, "/status/404?verbose=1", "", nil)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "/status/404", entry.Data["path"])
	assert.Equal(t, "verbose=1", entry.Data["query"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
}

func TestRequestLogger_PrivateErrorsLoggedAtErrorLevel(t *testing.T) {
	logger, hook := newNullLogger()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("backend exploded"))
		c.Status(http.StatusInternalServerError)
	})

	perform(r, http.MethodGet, "/broken", "", nil)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Message, "backend exploded")
}

func TestRequestLogger_BindErrorsStayAtInfo(t *testing.T) {
	logger, hook := newNullLogger()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.POST("/echo", NewHTTPPlaygroundHandlers(0).EchoWithBodyHandler)

	perform(r, http.MethodPost, "/echo", `{`, map[string]string{"Content-Type": "application/json"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusBadRequest, entry.Data["status"])
}

func TestRequestMetrics(t *testing.T) {
	observer := &recordingRequestObserver{}
	r := gin.New()
	r.Use(RequestMetrics(observer))
	r.GET("/status/:code", NewHTTPPlaygroundHandlers(0).StatusCodeHandler)

	perform(r, http.MethodGet, "/status/503", "", nil)
	perform(r, http.MethodGet, "/nowhere", "", nil)

	assert.Equal(t, []observedRequest{
		{method: http.MethodGet, route: "/status/:code", code: http.StatusServiceUnavailable},
		{method: http.MethodGet, route: "", code: http.StatusNotFound},
	}, observer.requests)
}
