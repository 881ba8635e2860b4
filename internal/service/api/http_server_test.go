package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer_Settings(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{Debug: true})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.NotNil(t, e.HTTPErrorHandler)
	assert.NotNil(t, e.IPExtractor)
	assert.NotZero(t, e.Server.ReadHeaderTimeout)
}

func TestNewHTTPServer_JSONBody(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t, newTestConfig())

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		expected    int
	}{
		{"JSON 객체", http.MethodGet, "/health", "application/json", `{"a":1}`, http.StatusOK},
		{"JSON 배열", http.MethodGet, "/info", "application/json", `[1,2,3]`, http.StatusOK},
		{"charset 파라미터", http.MethodGet, "/", "application/json; charset=utf-8", `{"a":1}`, http.StatusOK},
		{"빈 본문", http.MethodGet, "/health", "application/json", "", http.StatusOK},
		{"잘못된 JSON", http.MethodGet, "/health", "application/json", `{"a":`, http.StatusBadRequest},
		{"JSON 문자열(원시값)", http.MethodGet, "/health", "application/json", `"hello"`, http.StatusBadRequest},
		{"JSON 숫자(원시값)", http.MethodGet, "/", "application/json", `42`, http.StatusBadRequest},
		{"정의되지 않은 경로의 잘못된 JSON", http.MethodPost, "/nope", "application/json", `nope`, http.StatusBadRequest},
		{"다른 Content-Type은 파싱하지 않음", http.MethodGet, "/health", "text/plain", `{"a":`, http.StatusOK},
		{"Content-Type 없음", http.MethodGet, "/health", "", `{"a":`, http.StatusOK},
		{"정의되지 않은 경로의 올바른 JSON", http.MethodPost, "/nope", "application/json", `{"a":1}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(e, tt.method, tt.path, tt.contentType, tt.body)
			assert.Equal(t, tt.expected, rec.Code, rec.Body.String())
		})
	}
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.HTTP.BodyLimit = "1K"
	e := newTestEcho(t, cfg)

	small := `{"data":"` + strings.Repeat("a", 100) + `"}`
	rec := serve(e, http.MethodGet, "/health", echo.MIMEApplicationJSON, small)
	assert.Equal(t, http.StatusOK, rec.Code)

	large := `{"data":"` + strings.Repeat("a", 2048) + `"}`
	rec = serve(e, http.MethodGet, "/health", echo.MIMEApplicationJSON, large)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`, rec.Body.String())
}

func TestNewHTTPServer_DefaultBodyLimit(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t, newTestConfig())

	// 기본 제한(100K)을 넘는 본문
	large := `{"data":"` + strings.Repeat("a", 101*1024) + `"}`
	rec := serve(e, http.MethodGet, "/health", echo.MIMEApplicationJSON, large)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewHTTPServer_RateLimiting(t *testing.T) {
	t.Parallel()

	t.Run("기본값은 비활성화", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho(t, newTestConfig())
		for i := 0; i < 100; i++ {
			require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", "", "").Code)
		}
	})

	t.Run("활성화 시 버스트 초과 요청은 429", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig()
		cfg.HTTP.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}
		e := newTestEcho(t, cfg)

		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", "", "").Code)
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", "", "").Code)

		rec := serve(e, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

func TestNewHTTPServer_RateLimitingClientIP(t *testing.T) {
	t.Parallel()

	newEcho := func() *echo.Echo {
		cfg := newTestConfig()
		cfg.HTTP.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
		return newTestEcho(t, cfg)
	}

	request := func(e *echo.Echo, remoteAddr, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remoteAddr
		if forwardedFor != "" {
			req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("외부 클라이언트의 X-Forwarded-For 위조는 무시", func(t *testing.T) {
		t.Parallel()

		e := newEcho()
		assert.Equal(t, http.StatusOK, request(e, "203.0.113.7:5000", "198.51.100.1"))
		assert.Equal(t, http.StatusTooManyRequests, request(e, "203.0.113.7:5000", "198.51.100.2"))
	})

	t.Run("사설망 프록시를 거친 요청은 클라이언트 IP별로 제한", func(t *testing.T) {
		t.Parallel()

		e := newEcho()
		assert.Equal(t, http.StatusOK, request(e, "10.0.0.5:5000", "198.51.100.1"))
		assert.Equal(t, http.StatusOK, request(e, "10.0.0.5:5000", "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, request(e, "10.0.0.5:5000", "198.51.100.1"))
	})
}

func TestNewHTTPServer_DebugPrettyPrints(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.Debug = true
	e := newTestEcho(t, cfg)

	rec := serve(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2025-01-02T03:04:05.678Z","version":"1.0.0"}`, rec.Body.String())
}
