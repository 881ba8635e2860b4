package smoke

import (
	"time"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/tidwall/gjson"
)

// endpoint 검사할 경로와 응답 본문 검증 규칙입니다.
type endpoint struct {
	path  string
	rules []rule
}

// rule 응답 본문의 필드 하나를 검증합니다.
type rule func(body gjson.Result) error

// endpoints 검사 순서대로 나열한 엔드포인트 목록을 반환합니다.
func endpoints(opts Options) []endpoint {
	versionRule := nonEmpty("version")
	if opts.ExpectVersion != "" {
		versionRule = equals("version", opts.ExpectVersion)
	}

	deploymentRule := nonEmpty("deployment")
	if opts.ExpectDeployment != "" {
		deploymentRule = equals("deployment", opts.ExpectDeployment)
	}

	return []endpoint{
		{
			path: constants.PathHealth,
			rules: []rule{
				equals("status", constants.HealthStatusHealthy),
				timestamp("timestamp"),
				versionRule,
			},
		},
		{
			path: constants.PathRoot,
			rules: []rule{
				equals("message", constants.Greeting),
				versionRule,
				deploymentRule,
				timestamp("timestamp"),
			},
		},
		{
			path: constants.PathInfo,
			rules: []rule{
				equals("app", constants.AppTitle),
				nonEmpty("environment"),
				versionRule,
				equals("platform", constants.Platform),
				equals("pipeline", constants.Pipeline),
			},
		},
	}
}

func stringField(body gjson.Result, key string) (string, error) {
	v := body.Get(key)
	if !v.Exists() {
		return "", apperrors.Newf(apperrors.ExecutionFailed, "응답에 '%s' 필드가 없습니다", key)
	}
	if v.Type != gjson.String {
		return "", apperrors.Newf(apperrors.ExecutionFailed, "'%s' 필드가 문자열이 아닙니다: %s", key, v.Raw)
	}

	return v.String(), nil
}

func equals(key, want string) rule {
	return func(body gjson.Result) error {
		got, err := stringField(body, key)
		if err != nil {
			return err
		}
		if got != want {
			return apperrors.Newf(apperrors.ExecutionFailed, "'%s' 필드 값이 일치하지 않습니다 (기대: %q, 실제: %q)", key, want, got)
		}

		return nil
	}
}

func nonEmpty(key string) rule {
	return func(body gjson.Result) error {
		got, err := stringField(body, key)
		if err != nil {
			return err
		}
		if got == "" {
			return apperrors.Newf(apperrors.ExecutionFailed, "'%s' 필드가 비어 있습니다", key)
		}

		return nil
	}
}

func timestamp(key string) rule {
	return func(body gjson.Result) error {
		got, err := stringField(body, key)
		if err != nil {
			return err
		}
		if _, err := time.Parse(time.RFC3339, got); err != nil {
			return apperrors.Wrapf(err, apperrors.ExecutionFailed, "'%s' 필드가 RFC 3339 시각이 아닙니다: %q", key, got)
		}

		return nil
	}
}
