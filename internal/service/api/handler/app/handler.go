// Package app 애플리케이션 안내 엔드포인트(/, /info) 핸들러를 제공합니다.
package app

import (
	"net/http"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/clock"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/httputil"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/model/app"
	"github.com/labstack/echo/v4"
)

// Handler 애플리케이션 안내 엔드포인트 핸들러
type Handler struct {
	appConfig *config.AppConfig

	clock clock.Clock
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(appConfig *config.AppConfig, clk clock.Clock) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if clk == nil {
		panic(constants.PanicMsgClockRequired)
	}

	return &Handler{
		appConfig: appConfig,

		clock: clk,
	}
}

// RootHandler godoc
// @Summary 환영 메시지
// @Description 현재 배포된 버전과 배포 대상을 함께 반환합니다.
// @Tags App
// @Produce json
// @Success 200 {object} app.RootResponse
// @Router / [get]
func (h *Handler) RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, app.RootResponse{
		Message:    constants.Greeting,
		Version:    h.appConfig.AppVersion,
		Deployment: h.appConfig.ResponseDeployment(),
		Timestamp:  httputil.FormatTimestamp(h.clock.Now()),
	})
}

// InfoHandler godoc
// @Summary 애플리케이션 정보
// @Description 실행 환경, 버전, 배포 플랫폼과 파이프라인 정보를 반환합니다.
// @Tags App
// @Produce json
// @Success 200 {object} app.InfoResponse
// @Router /info [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, app.InfoResponse{
		App:         constants.AppTitle,
		Environment: h.appConfig.Environment,
		Version:     h.appConfig.AppVersion,
		Platform:    constants.Platform,
		Pipeline:    constants.Pipeline,
	})
}
