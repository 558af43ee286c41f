package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/http_playground/pkg/resolver"
	"github.com/vit0-9/http_playground/pkg/utils"
	"github.com/vit0-9/http_playground/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeResolver struct {
	resolveFunc func(ctx context.Context, domain string) (*resolver.LookupResult, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, domain string) (*resolver.LookupResult, error) {
	return f.resolveFunc(ctx, domain)
}

type fakeInspector struct {
	inspected []string
}

func (f *fakeInspector) Inspect(_ context.Context, ip string) utils.IPInfoData {
	f.inspected = append(f.inspected, ip)
	return utils.IPInfoData{IPAddress: ip, IsValid: true, Version: "IPv4", IsGlobalUnicast: true}
}

type testDeps struct {
	resolver  DomainResolver
	inspector IPInspector
}

func newNullLogger() (logrus.FieldLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

// newTestRouter registers every handler the same way the application does.
func newTestRouter(t *testing.T, deps testDeps) *gin.Engine {
	t.Helper()
	logger, _ := newNullLogger()

	if deps.resolver == nil {
		deps.resolver = &fakeResolver{resolveFunc: func(ctx context.Context, domain string) (*resolver.LookupResult, error) {
			return nil, &resolver.ResolutionError{Domain: domain, Err: resolver.ErrNoSuchHost}
		}}
	}
	if deps.inspector == nil {
		deps.inspector = &fakeInspector{}
	}

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	playground := NewHTTPPlaygroundHandlers(0)
	netIntel := NewNetworkIntelligenceHandlers(deps.resolver, deps.inspector, 0, logger)
	pages := NewPageHandlers()
	health := NewHealthHandler("fake")

	r.GET("/", pages.IndexHandler)
	r.GET("/render-demo", pages.RenderDemoHandler)
	r.GET("/health", health.HealthCheckHandler)
	r.GET("/echo", playground.EchoHandler)
	r.DELETE("/echo", playground.EchoHandler)
	r.POST("/echo", playground.EchoWithBodyHandler)
	r.PUT("/echo", playground.EchoWithBodyHandler)
	r.GET("/status/:code", playground.StatusCodeHandler)
	r.GET("/dns-lookup", netIntel.DNSLookupHandler)
	r.POST("/dns-lookup", netIntel.DNSLookupPostHandler)
	r.GET("/ip-info", netIntel.IPInfoHandler)
	return r
}

func perform(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
