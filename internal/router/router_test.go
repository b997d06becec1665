package router_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/uk-dental-implants/config"
	"github.com/FACorreiaa/uk-dental-implants/internal/container"
)

type RouterTestSuite struct {
	suite.Suite
	handler http.Handler
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Mode = "test"
	cfg.Server.HTTPPort = "0"
	cfg.Server.Timeout = 5 * time.Second
	cfg.Site.BaseURL = "https://example.test"
	cfg.Site.Phone = "0800 123 4567"
	cfg.CORS.AllowedOrigins = []string{"https://allowed.test"}
	cfg.Lead.RateLimit = 3
	cfg.Lead.RateWindow = time.Minute
	cfg.Cache.TTL = time.Minute
	cfg.Build.Workers = 1
	return cfg
}

func (s *RouterTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	c, err := container.NewContainer(testConfig(), logger)
	s.Require().NoError(err)
	s.handler = c.Router()
}

func (s *RouterTestSuite) do(method, target string, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestPing() {
	rec := s.do(http.MethodGet, "/ping", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("pong", rec.Body.String())
}

func (s *RouterTestSuite) TestPages() {
	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/locations", http.StatusOK},
		{"/locations/", http.StatusOK},
		{"/locations/leeds", http.StatusOK},
		{"/locations/leeds/", http.StatusOK},
		{"/services/all-on-4", http.StatusOK},
		{"/quote", http.StatusOK},
		{"/sitemap.xml", http.StatusOK},
		{"/locations/atlantis", http.StatusNotFound},
		{"/services/veneers", http.StatusNotFound},
		{"/no/such/page", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := s.do(http.MethodGet, tt.path, "", nil)
		s.Equal(tt.status, rec.Code, tt.path)
		s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"), tt.path)
		s.NotEmpty(rec.Header().Get("Content-Type"), tt.path)
	}
}

func (s *RouterTestSuite) TestPagesAreCacheable() {
	rec := s.do(http.MethodGet, "/locations/leeds", "", nil)
	s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
}

func (s *RouterTestSuite) TestHead() {
	rec := s.do(http.MethodHead, "/services/all-on-4", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *RouterTestSuite) TestQuoteContext() {
	rec := s.do(http.MethodGet, "/quote?city=york", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `value="York"`)
}

func (s *RouterTestSuite) TestSubmitQuoteForm() {
	form := url.Values{
		"name":     {"Jane Smith"},
		"email":    {"jane@example.com"},
		"phone":    {"07123 456789"},
		"postcode": {"YO1 7HH"},
		"cityName": {"York"},
	}
	header := http.Header{"Content-Type": {"application/x-www-form-urlencoded"}}

	rec := s.do(http.MethodPost, "/quote", form.Encode(), header)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "A York dental implant specialist will contact you within 24 hours")

	form.Del("email")
	rec = s.do(http.MethodPost, "/quote", form.Encode(), header)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestLeadRateLimit() {
	body := `{"name":"A","email":"a@b.test","phone":"1","postcode":"X"}`
	header := http.Header{"Content-Type": {"application/json"}}

	for range testConfig().Lead.RateLimit {
		s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/leads", body, header).Code)
	}
	rec := s.do(http.MethodPost, "/api/v1/leads", body, header)
	s.Equal(http.StatusTooManyRequests, rec.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("too many lead submissions", resp["error"])
}

func (s *RouterTestSuite) TestAPI() {
	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/cities", http.StatusOK},
		{"/api/v1/cities?tier=3", http.StatusOK},
		{"/api/v1/cities?tier=9", http.StatusBadRequest},
		{"/api/v1/cities/leeds", http.StatusOK},
		{"/api/v1/cities/atlantis", http.StatusNotFound},
		{"/api/v1/regions", http.StatusOK},
		{"/api/v1/services", http.StatusOK},
		{"/api/v1/leads/options", http.StatusOK},
		{"/api/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := s.do(http.MethodGet, tt.path, "", nil)
		s.Equal(tt.status, rec.Code, tt.path)
		s.Equal("application/json", rec.Header().Get("Content-Type"), tt.path)
	}
}

func (s *RouterTestSuite) TestCORS() {
	rec := s.do(http.MethodGet, "/api/v1/services", "", http.Header{"Origin": {"https://allowed.test"}})
	s.Equal("https://allowed.test", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.do(http.MethodGet, "/api/v1/services", "", http.Header{"Origin": {"https://evil.test"}})
	s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterTestSuite) TestRequestID() {
	rec := s.do(http.MethodGet, "/api/v1/cities/atlantis", "", http.Header{"X-Request-Id": {"req-123"}})
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("req-123", resp["request_id"])
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
