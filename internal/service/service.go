// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작과 종료가 context로 제어되는 백그라운드 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 하며,
// 서비스는 완전히 종료된 뒤(또는 시작에 실패한 경우 즉시) serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
