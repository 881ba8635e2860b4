package smoke

import (
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
)

const (
	// DefaultRetries 최초 요청 이후의 재시도 횟수 (최초 요청을 포함해 최대 5회)
	DefaultRetries = 4

	// DefaultRetryWaitMin 재시도 대기 시간의 하한
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax 재시도 대기 시간의 상한
	DefaultRetryWaitMax = 10 * time.Second

	// DefaultTimeout 요청 1건당 타임아웃
	DefaultTimeout = 10 * time.Second
)

// Options 스모크 체크 대상과 동작을 지정합니다.
type Options struct {
	// BaseURL 검사할 서버의 기본 URL (예: https://example.onrender.com)
	BaseURL string

	// ExpectVersion 비어 있지 않으면 /health, / 및 /info 응답의 version이 이 값과 같아야 합니다.
	ExpectVersion string

	// ExpectDeployment 비어 있지 않으면 / 응답의 deployment가 이 값과 같아야 합니다.
	ExpectDeployment string

	Retries      int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

// withDefaults 0 값 필드를 기본값으로 채운 사본을 반환합니다.
// Retries는 음수일 때만 기본값으로 대체되며, 0은 재시도하지 않음을 뜻합니다.
func (o Options) withDefaults() Options {
	if o.Retries < 0 {
		o.Retries = DefaultRetries
	}
	if o.RetryWaitMin <= 0 {
		o.RetryWaitMin = DefaultRetryWaitMin
	}
	if o.RetryWaitMax <= 0 {
		o.RetryWaitMax = DefaultRetryWaitMax
	}
	if o.RetryWaitMax < o.RetryWaitMin {
		o.RetryWaitMax = o.RetryWaitMin
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}

	return o
}

// parseBaseURL 기본 URL을 검증하고 끝의 '/'를 제거한 문자열을 반환합니다.
func parseBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperrors.New(apperrors.InvalidInput, "검사할 서버 URL이 지정되지 않았습니다")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.InvalidInput, "서버 URL(%s)의 형식이 올바르지 않습니다", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", apperrors.Newf(apperrors.InvalidInput, "서버 URL(%s)은 http 또는 https 스킴이어야 합니다", raw)
	}
	if u.Host == "" {
		return "", apperrors.Newf(apperrors.InvalidInput, "서버 URL(%s)에 호스트가 없습니다", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", apperrors.Newf(apperrors.InvalidInput, "서버 URL(%s)에는 쿼리나 프래그먼트를 포함할 수 없습니다", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
