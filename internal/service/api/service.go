package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/clock"
	"github.com/darkkaiser/cicd-demo-server/internal/service"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/app"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/handler/system"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service HTTP 응답 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 수신 포트를 연 뒤 별도 고루틴에서 요청을 처리하며,
// serviceStopCtx가 취소되면 진행 중인 요청을 HTTP.ShutdownTimeout 동안 기다린 후 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	clock clock.Clock

	// stdout 기동 메시지 출력 대상
	stdout io.Writer

	running   bool
	runningMu sync.Mutex

	addr   net.Addr
	addrMu sync.RWMutex
}

var _ service.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, clk clock.Clock) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if clk == nil {
		panic(constants.PanicMsgClockRequired)
	}

	return &Service{
		appConfig: appConfig,

		clock: clk,

		stdout: os.Stdout,
	}
}

// Start API 서비스를 시작합니다.
//
// 수신 포트 바인딩은 이 함수 안에서 동기적으로 수행되므로, 포트 충돌 등의 에러는 즉시 반환됩니다.
// 바인딩에 성공하면 기동 메시지를 출력하고 서버 루프를 고루틴으로 실행한 뒤 바로 반환합니다.
// 에러를 반환하는 경우에도 serviceStopWG.Done()은 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	e := s.setupServer()

	address := s.appConfig.Address()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		serviceStopWG.Done()
		return newListenError(err, address)
	}
	e.Listener = ln

	s.addrMu.Lock()
	s.addr = ln.Addr()
	s.addrMu.Unlock()

	s.running = true

	if err := announceStartup(s.stdout, s.appConfig); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Warn(constants.LogMsgStartupAnnounceFail)
	}

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address":    ln.Addr().String(),
		"version":    s.appConfig.AppVersion,
		"deployment": s.appConfig.DeploymentType,
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// Addr 서버가 수신 대기 중인 주소를 반환합니다. 시작 전에는 nil입니다.
func (s *Service) Addr() net.Addr {
	s.addrMu.RLock()
	defer s.addrMu.RUnlock()

	return s.addr
}

// runServiceLoop HTTP 서버를 실행하고 종료 신호를 기다립니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러와 미들웨어, 라우트가 모두 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.clock, s.appConfig.AppVersion)
	appHandler := app.NewHandler(s.appConfig, s.clock)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:     s.appConfig.Debug,
		BodyLimit: s.appConfig.HTTP.BodyLimit,
		RateLimit: s.appConfig.HTTP.RateLimit,
	})

	RegisterRoutes(e, systemHandler, appHandler)

	return e
}

// startHTTPServer 미리 바인딩된 Listener로 요청 처리를 시작합니다.
// 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": s.appConfig.Port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(s.appConfig.Address()))
}

// handleServerError HTTP 서버 실행 결과를 처리합니다. Graceful Shutdown에 의한 종료는 정상으로 취급합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Port,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 서버가 이미 종료되었으므로 Shutdown 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) shutdownTimeout() time.Duration {
	if s.appConfig.HTTP.ShutdownTimeout <= 0 {
		return config.DefaultShutdownTimeout
	}
	return s.appConfig.HTTP.ShutdownTimeout
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
