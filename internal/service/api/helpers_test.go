package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/clock"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/app"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// fixedTime 테스트 응답의 timestamp를 고정하기 위한 시각입니다.
var fixedTime = time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.UTC)

// newTestConfig 환경 변수가 하나도 설정되지 않았을 때와 같은 설정을 반환합니다.
func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Port:        config.DefaultPort,
		AppVersion:  config.DefaultAppVersion,
		Environment: config.DefaultEnvironment,
		Log: config.LogConfig{
			MaxAge: config.DefaultLogMaxAge,
		},
		HTTP: config.HTTPConfig{
			BodyLimit:       config.DefaultBodyLimit,
			ShutdownTimeout: config.DefaultShutdownTimeout,
			RateLimit: config.RateLimitConfig{
				Burst: config.DefaultRateLimitBurst,
			},
		},
	}
}

// newTestEcho 라우트와 미들웨어가 모두 구성된 Echo 인스턴스를 생성합니다.
func newTestEcho(t *testing.T, appConfig *config.AppConfig) *echo.Echo {
	t.Helper()

	return newTestEchoWithClock(t, appConfig, clock.NewFixed(fixedTime))
}

func newTestEchoWithClock(t *testing.T, appConfig *config.AppConfig, clk clock.Clock) *echo.Echo {
	t.Helper()

	e := NewHTTPServer(HTTPServerConfig{
		Debug:     appConfig.Debug,
		BodyLimit: appConfig.HTTP.BodyLimit,
		RateLimit: appConfig.HTTP.RateLimit,
	})
	RegisterRoutes(e, system.NewHandler(clk, appConfig.AppVersion), app.NewHandler(appConfig, clk))

	return e
}

// serve Echo 인스턴스에 요청을 보내고 응답 레코더를 반환합니다.
func serve(e *echo.Echo, method, target, contentType, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
