package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/cicd-demo-server/internal/config"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/clock"
	"github.com/darkkaiser/cicd-demo-server/internal/pkg/version"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
)

const component = "main"

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	applog.WithComponentAndFields(component, applog.Fields{
		"app_version": appConfig.AppVersion,
		"environment": appConfig.Environment,
		"build":       version.Get().ToMap(),
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	apiService := api.NewService(appConfig, clock.System())

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()

		appLogCloser.Close()
		os.Exit(1)
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields(component, applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신")

	cancel()
	serviceStopWG.Wait()
}

// newLogOptions 실행 환경에 맞는 로그 설정을 반환합니다.
//
// 표준 출력은 기동 메시지 세 줄만 남기기 위해 콘솔 로그는 표준 에러로 보냅니다.
func newLogOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Environment == "production" {
		opts = applog.NewProductionOptions(config.AppName)
	} else {
		opts = applog.NewDevelopmentOptions(config.AppName)
	}

	opts.Dir = appConfig.Log.Dir
	opts.MaxAge = appConfig.Log.MaxAge
	opts.Console = os.Stderr

	return opts
}
