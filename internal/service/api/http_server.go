package api

import (
	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/cicd-demo-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// BodyLimit 요청 본문의 최대 크기 (예: "100K")
	BodyLimit string

	// RateLimit IP별 요청 속도 제한. RequestsPerSecond가 0이면 적용하지 않습니다.
	RateLimit config.RateLimitConfig
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id를 남기기 위해 로깅보다 먼저 적용
//  3. HTTPLogger - 이후 단계에서 거부된 요청(429, 413, 400)도 기록
//  4. RateLimiting - 설정된 경우에만 적용
//  5. BodyLimit - 초과 시 413
//  6. JSONBody - application/json 본문 파싱, 형식 오류 시 400
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	// 표준 출력에는 기동 메시지 세 줄만 남깁니다.
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	// 직접 연결한 상대가 사설망/루프백 대역의 프록시일 때만 X-Forwarded-For를 신뢰합니다.
	// 외부 클라이언트가 헤더를 위조해도 c.RealIP()는 실제 연결 주소를 반환합니다.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = config.DefaultBodyLimit
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.HTTPLogger())
	if cfg.RateLimit.Enabled() {
		e.Use(appmiddleware.RateLimiting(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(appmiddleware.JSONBody())

	return e
}
