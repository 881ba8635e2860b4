// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 배포 플랫폼과 모니터링 시스템이 호출하는 헬스체크를 처리합니다.
package system

import (
	"net/http"

	"github.com/darkkaiser/cicd-demo-server/internal/pkg/clock"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/httputil"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	clock clock.Clock

	appVersion string
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(clk clock.Clock, appVersion string) *Handler {
	if clk == nil {
		panic(constants.PanicMsgClockRequired)
	}

	return &Handler{
		clock: clk,

		appVersion: appVersion,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버가 요청을 처리할 수 있는지 확인합니다.
// @Description 외부 의존성을 검사하지 않으므로 프로세스가 살아 있으면 항상 healthy를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathHealth,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:    constants.HealthStatusHealthy,
		Timestamp: httputil.FormatTimestamp(h.clock.Now()),
		Version:   h.appVersion,
	})
}
