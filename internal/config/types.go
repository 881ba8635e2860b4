package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
//
// 기동 시 한 번 로드된 뒤에는 변경되지 않으며, 여러 고루틴에서 잠금 없이 읽습니다.
type AppConfig struct {
	Debug bool `koanf:"debug"`

	// Port HTTP 서버의 수신 포트 (PORT)
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// AppVersion 응답에 노출되는 애플리케이션 버전 (APP_VERSION)
	AppVersion string `koanf:"app_version" validate:"required"`

	// DeploymentType 배포 대상 이름 (DEPLOYMENT_TYPE). 설정되지 않았으면 빈 문자열입니다.
	DeploymentType string `koanf:"deployment_type"`

	// Environment 실행 환경 이름 (NODE_ENV, APP_ENV)
	Environment string `koanf:"environment" validate:"required"`

	Log  LogConfig  `koanf:"log"`
	HTTP HTTPConfig `koanf:"http"`
}

// ResponseDeployment GET / 응답에 사용할 배포 대상 이름을 반환합니다.
func (c *AppConfig) ResponseDeployment() string {
	if c.DeploymentType == "" {
		return DefaultResponseDeployment
	}
	return c.DeploymentType
}

// StartupDeployment 기동 메시지에 사용할 배포 대상 이름을 반환합니다.
func (c *AppConfig) StartupDeployment() string {
	if c.DeploymentType == "" {
		return DefaultStartupDeployment
	}
	return c.DeploymentType
}

// Address HTTP 서버가 바인딩할 주소를 반환합니다.
func (c *AppConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "Port":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("서버 포트(PORT)는 1에서 65535 사이의 값이어야 합니다: '%v'", fieldErr.Value()))
				case "AppVersion":
					return apperrors.New(apperrors.InvalidInput, "애플리케이션 버전(app_version)이 비어 있습니다")
				case "Environment":
					return apperrors.New(apperrors.InvalidInput, "실행 환경(environment)이 비어 있습니다")
				case "MaxAge":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("로그 보관 일수(log.max_age)는 0 이상이어야 합니다: '%v'", fieldErr.Value()))
				case "BodyLimit":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 본문 크기 제한(http.body_limit) 형식이 올바르지 않습니다: '%v' (예: 100K, 2M)", fieldErr.Value()))
				case "ShutdownTimeout":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("종료 대기 시간(http.shutdown_timeout)은 0보다 커야 합니다: '%v'", fieldErr.Value()))
				case "RequestsPerSecond", "Burst":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("속도 제한 설정(http.rate_limit.%s)은 0 이상이어야 합니다: '%v'", fieldErr.Field(), fieldErr.Value()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return c.HTTP.RateLimit.validate()
}

// VerifyRecommendations 서비스 운영의 안정성을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않으며, 경고 메시지 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.Port < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Port))
	}

	if c.Debug && c.Environment == "production" {
		warnings = append(warnings, "production 환경에서 디버그 모드가 활성화되어 있습니다. 상세 로그가 대량으로 기록될 수 있습니다")
	}

	if c.HTTP.RateLimit.Enabled() && c.HTTP.RateLimit.RequestsPerSecond < 1 {
		warnings = append(warnings, fmt.Sprintf("초당 허용 요청 수가 1 미만입니다(requests_per_second: %g). 배포 파이프라인의 헬스 체크가 거부될 수 있습니다", c.HTTP.RateLimit.RequestsPerSecond))
	}

	return warnings
}

// LogConfig 로그 파일 출력 설정입니다. Dir이 비어 있으면 콘솔에만 출력합니다.
type LogConfig struct {
	Dir    string `koanf:"dir"`
	MaxAge int    `koanf:"max_age" validate:"min=0"`
}

// HTTPConfig HTTP 서버의 부가 동작 설정입니다.
type HTTPConfig struct {
	BodyLimit       string          `koanf:"body_limit" validate:"body_limit"`
	ShutdownTimeout time.Duration   `koanf:"shutdown_timeout" validate:"gt=0"`
	RateLimit       RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한 설정입니다. RequestsPerSecond가 0이면 비활성화됩니다.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"min=0"`
	Burst             int     `koanf:"burst" validate:"min=0"`
}

// Enabled 속도 제한이 활성화되었는지 여부를 반환합니다.
func (c *RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

func (c *RateLimitConfig) validate() error {
	if c.Enabled() && c.Burst < 1 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("속도 제한 활성화 시 버스트 크기(http.rate_limit.burst)는 1 이상이어야 합니다: '%d'", c.Burst))
	}
	return nil
}
