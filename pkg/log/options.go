package log

import (
	"fmt"
	"io"
	"os"
)

// Options 로거 설정을 위한 구조체입니다.
type Options struct {
	Name  string // 로그 파일명 생성에 사용될 애플리케이션 식별자
	Level Level  // 로그 레벨 (0이면 Info)

	// Dir 로그 파일이 저장될 디렉토리 경로입니다.
	// 비어 있으면 파일 로그를 남기지 않고 콘솔로만 출력합니다. (Render 등 PaaS는 표준 출력을 수집합니다)
	Dir string

	MaxAge     int // 오래된 로그 삭제 기준일 (일 단위, 0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (MB, 0: 기본값 100MB 사용)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개 사용)

	EnableCriticalLog bool // ERROR 이상의 로그를 별도 파일로 분리 저장할지 여부 (Dir 지정 시에만 유효)
	EnableVerboseLog  bool // DEBUG 이하의 로그를 별도 파일로 분리 저장할지 여부 (Dir 지정 시에만 유효)
	EnableConsoleLog  bool // 표준 출력에도 로그를 출력할지 여부

	// Console 콘솔 로그의 출력 대상입니다. nil이면 os.Stdout을 사용합니다.
	Console io.Writer

	// 로그를 호출한 소스 코드의 위치를 함께 기록할지 여부
	ReportCaller bool

	// 호출자 경로에서 잘라낼 앞부분
	// 예: "github.com/darkkaiser/cicd-demo-server/pkg/log.Setup" -> "...pkg/log.Setup"
	CallerPathPrefix string
}

// Validate Options 구조체의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir == "" && !opts.EnableConsoleLog {
		return fmt.Errorf("로그 출력 대상이 없습니다: 로그 디렉토리(Dir)를 지정하거나 콘솔 로그를 활성화해야 합니다")
	}

	// Dir이 이미 파일로 존재하는지 확인
	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
