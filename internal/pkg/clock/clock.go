// Package clock 현재 시각을 얻는 방법을 추상화합니다.
//
// 핸들러는 time.Now를 직접 호출하지 않고 Clock을 주입받으므로,
// 테스트에서 NewFixed로 응답의 timestamp 값을 고정할 수 있습니다.
package clock

import (
	"sync"
	"time"
)

// Clock 현재 시각을 반환하는 인터페이스입니다.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System 운영 환경에서 사용하는 시스템 시계를 반환합니다.
func System() Clock {
	return systemClock{}
}

// Fixed 항상 같은 시각을 반환하는 테스트용 시계입니다. Set/Advance로 시각을 옮길 수 있습니다.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFixed 주어진 시각에 고정된 시계를 생성합니다.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.now
}

// Set 시계의 현재 시각을 변경합니다.
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = t
}

// Advance 시계를 d만큼 앞으로 이동합니다.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}
