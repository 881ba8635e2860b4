package api

import (
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/app"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
// 세 경로 모두 GET 전용이며 인증이 필요 없습니다. HEAD 요청은 GET 핸들러가 처리하고 본문은 생략됩니다.
// 그 외 경로와 메서드는 전역 에러 핸들러에서 404로 응답합니다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, appHandler *app.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerAppRoutes(e, appHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.PathHealth, h.HealthCheckHandler)
	e.HEAD(constants.PathHealth, h.HealthCheckHandler)
}

func registerAppRoutes(e *echo.Echo, h *app.Handler) {
	e.GET(constants.PathRoot, h.RootHandler)
	e.HEAD(constants.PathRoot, h.RootHandler)

	e.GET(constants.PathInfo, h.InfoHandler)
	e.HEAD(constants.PathInfo, h.InfoHandler)
}
