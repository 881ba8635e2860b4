package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPLogger(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		handler echo.HandlerFunc
		verify  func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]any)
	}{
		{
			name:   "기본 GET 요청",
			target: "/health",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]any) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "HTTP 요청", entry["msg"])
				assert.Equal(t, "api.middleware.http_logger", entry["component"])
				assert.Equal(t, "GET", entry["method"])
				assert.Equal(t, "/health", entry["path"])
				assert.Equal(t, float64(http.StatusOK), entry["status"])
				assert.Equal(t, "2", entry["bytes_out"])
				assert.Equal(t, "0", entry["bytes_in"])
				assert.Contains(t, entry, "latency_human")
			},
		},
		{
			name:   "민감한 쿼리 파라미터 마스킹",
			target: "/info?token=secret-token-value-123&id=7",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]any) {
				uri, _ := entry["uri"].(string)
				assert.NotContains(t, uri, "secret-token-value-123")
				assert.Contains(t, uri, "id=7")
			},
		},
		{
			name:   "핸들러 에러는 에러 핸들러로 전달된 뒤 기록",
			target: "/",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusTeapot, "teapot")
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]any) {
				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Equal(t, float64(http.StatusTeapot), entry["status"])
			},
		},
		{
			name:   "일반 에러는 500으로 기록",
			target: "/",
			handler: func(c echo.Context) error {
				return errors.New("boom")
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]any) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := HTTPLogger()(tt.handler)(c)
			assert.NoError(t, err, "에러는 c.Error로 처리되고 nil이 반환되어야 합니다")

			tt.verify(t, rec, parseLastLogEntry(t, buf))
		})
	}
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		contains []string
		excludes []string
	}{
		{"쿼리 없음", "/health", []string{"/health"}, nil},
		{"민감 정보 없음", "/info?id=1", []string{"id=1"}, nil},
		{"token 마스킹", "/info?token=abcdefghijklmnop", []string{"token=abcd"}, []string{"abcdefghijklmnop"}},
		{"password 마스킹", "/?password=hunter2&x=1", []string{"x=1"}, []string{"hunter2"}},
		{"여러 개 마스킹", "/?api_key=key-0000000000&secret=shh", nil, []string{"key-0000000000", "secret=shh"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := maskSensitiveQueryParams(tt.uri)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.False(t, strings.Contains(got, s), "%q가 마스킹되지 않았습니다: %s", s, got)
			}
		})
	}
}

func TestMaskSensitiveQueryParams_InvalidURI(t *testing.T) {
	t.Parallel()

	invalid := "/%zz?token=abc"
	assert.Equal(t, invalid, maskSensitiveQueryParams(invalid))
}
