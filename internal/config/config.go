package config

import (
	"strings"
	"time"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "cicd-demo-server"

	// EnvPrefix 부가 설정(로그, HTTP 튜닝 등)을 지정하는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자로 변환됩니다. 예: CICD_HTTP__BODY_LIMIT -> http.body_limit
	EnvPrefix = "CICD_"

	// DefaultPort PORT 환경 변수가 없을 때 사용하는 수신 포트입니다.
	DefaultPort = 3000

	// DefaultAppVersion APP_VERSION 환경 변수가 없을 때 응답에 노출하는 버전입니다.
	DefaultAppVersion = "1.0.0"

	// DefaultEnvironment NODE_ENV, APP_ENV가 모두 없을 때의 실행 환경 이름입니다.
	DefaultEnvironment = "development"

	// DefaultResponseDeployment DEPLOYMENT_TYPE이 없을 때 GET / 응답에 사용하는 값입니다.
	DefaultResponseDeployment = "production"

	// DefaultStartupDeployment DEPLOYMENT_TYPE이 없을 때 기동 메시지에 사용하는 값입니다.
	// GET / 응답의 기본값과 다르며, 기존 배포 스크립트와의 호환을 위해 그대로 유지합니다.
	DefaultStartupDeployment = "blue"

	// DefaultBodyLimit 요청 본문의 최대 크기입니다.
	DefaultBodyLimit = "100K"

	// DefaultShutdownTimeout 종료 신호 수신 후 진행 중인 요청을 기다리는 최대 시간입니다.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultLogMaxAge 로그 파일 보관 일수입니다.
	DefaultLogMaxAge = 30

	// DefaultRateLimitBurst 속도 제한 활성화 시 허용하는 순간 최대 요청 수입니다.
	DefaultRateLimitBurst = 20
)

// legacyEnvLayers 배포 플랫폼이 주입하는 접두사 없는 환경 변수와 설정 키의 대응 관계입니다.
// 각 레이어는 순서대로 로드되므로, 뒤의 레이어가 앞의 레이어를 덮어씁니다. (APP_ENV > NODE_ENV)
var legacyEnvLayers = []map[string]string{
	{
		"PORT":            "port",
		"APP_VERSION":     "app_version",
		"DEPLOYMENT_TYPE": "deployment_type",
		"NODE_ENV":        "environment",
	},
	{
		"APP_ENV": "environment",
	},
}

// defaults 환경 변수가 하나도 없을 때의 설정값입니다.
func defaults() AppConfig {
	return AppConfig{
		Port:        DefaultPort,
		AppVersion:  DefaultAppVersion,
		Environment: DefaultEnvironment,
		Log: LogConfig{
			MaxAge: DefaultLogMaxAge,
		},
		HTTP: HTTPConfig{
			BodyLimit:       DefaultBodyLimit,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateLimit: RateLimitConfig{
				Burst: DefaultRateLimitBurst,
			},
		},
	}
}

// Load 환경 변수로부터 애플리케이션 설정을 로드합니다.
//
// 우선순위 (낮음 -> 높음):
//  1. 구조체 기본값
//  2. PORT, APP_VERSION, DEPLOYMENT_TYPE, NODE_ENV
//  3. APP_ENV
//  4. CICD_ 접두사 환경 변수
//
// 빈 문자열로 설정된 환경 변수는 설정되지 않은 것으로 취급합니다.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. 배포 플랫폼 환경 변수 로드
	for _, layer := range legacyEnvLayers {
		if err := k.Load(env.ProviderWithValue("", ".", legacyEnvMapper(layer)), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
		}
	}

	// 3. 접두사 환경 변수 로드 (최우선 순위)
	// 배포 환경에는 CICD_로 시작하는 다른 용도의 변수(CI 토큰 등)가 있을 수 있으므로, 설정 키로 정의된 변수만 읽습니다.
	knownKeys := make(map[string]struct{})
	for _, key := range k.Keys() {
		knownKeys[key] = struct{}{}
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", prefixedEnvMapper(knownKeys)), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (정의되지 않은 키가 있으면 에러)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "환경 변수 값을 설정 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, err
	}

	return &appConfig, nil
}

// legacyEnvMapper 대응표에 있는 환경 변수만 설정 키로 변환합니다. 빈 키를 반환하면 해당 변수는 무시됩니다.
func legacyEnvMapper(layer map[string]string) func(string, string) (string, any) {
	return func(name, value string) (string, any) {
		key, ok := layer[name]
		if !ok || value == "" {
			return "", nil
		}
		return key, value
	}
}

// prefixedEnvMapper CICD_LOG__MAX_AGE 형태의 환경 변수를 log.max_age 키로 변환합니다.
// knownKeys에 없는 키(CICD_PIPELINE_TOKEN, 중간 계층인 CICD_HTTP 등)는 무시합니다.
func prefixedEnvMapper(knownKeys map[string]struct{}) func(string, string) (string, any) {
	return func(name, value string) (string, any) {
		if value == "" {
			return "", nil
		}

		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if _, ok := knownKeys[key]; !ok {
			return "", nil
		}

		return key, value
	}
}
