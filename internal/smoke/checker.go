// Package smoke 배포 직후 서버가 기대한 응답을 내는지 확인하는 스모크 체크를 제공합니다.
//
// 세 엔드포인트(/health, /, /info)를 순서대로 호출하고, 상태 코드와 응답 본문의 필드를 검증합니다.
// 연결 오류와 5xx 응답은 지수 백오프로 재시도하므로 기동 중인 서버에도 바로 사용할 수 있습니다.
package smoke

import (
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

// maxBodySize 검사 대상 응답 본문의 최대 크기
const maxBodySize = 64 << 10

// Result 엔드포인트 하나의 검사 결과입니다.
type Result struct {
	Path       string
	StatusCode int
	Elapsed    time.Duration

	// Err 검사에 실패한 경우 그 원인, 성공하면 nil
	Err error
}

// Passed 검사 통과 여부를 반환합니다.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report 전체 검사 결과입니다.
type Report struct {
	BaseURL string
	Results []Result
}

// Passed 모든 엔드포인트가 통과했는지 여부를 반환합니다.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}

	return true
}

// Failures 실패한 결과만 반환합니다.
func (r *Report) Failures() []Result {
	var failures []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failures = append(failures, res)
		}
	}

	return failures
}

// Checker 서버 응답을 검증합니다.
type Checker struct {
	baseURL string
	opts    Options

	client *retryablehttp.Client
}

// NewChecker Checker 인스턴스를 생성합니다. BaseURL이 올바르지 않으면 InvalidInput 에러를 반환합니다.
func NewChecker(opts Options) (*Checker, error) {
	baseURL, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = opts.Timeout
	client.RetryMax = opts.Retries
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.CheckRetry = retryablehttp.DefaultRetryPolicy
	client.Backoff = retryablehttp.DefaultBackoff
	// 재시도를 모두 소진하면 마지막 응답을 그대로 받아 상태 코드로 실패를 보고합니다.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = newLeveledLogger()

	return &Checker{
		baseURL: baseURL,
		opts:    opts,

		client: client,
	}, nil
}

// Run 모든 엔드포인트를 검사하고 결과를 반환합니다.
// 개별 검사의 실패는 Report에 담기며, 컨텍스트가 취소된 경우에만 에러를 반환합니다.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	defer c.client.HTTPClient.CloseIdleConnections()

	report := &Report{BaseURL: c.baseURL}
	for _, ep := range endpoints(c.opts) {
		if err := ctx.Err(); err != nil {
			return report, apperrors.Wrap(err, apperrors.Unavailable, "스모크 체크가 중단되었습니다")
		}

		res := c.check(ctx, ep)

		fields := applog.Fields{
			"path":        res.Path,
			"status_code": res.StatusCode,
			"elapsed":     res.Elapsed.String(),
		}
		if res.Passed() {
			applog.WithComponentAndFields(component, fields).Info("엔드포인트 검사 통과")
		} else {
			fields["error"] = res.Err.Error()
			applog.WithComponentAndFields(component, fields).Warn("엔드포인트 검사 실패")
		}

		report.Results = append(report.Results, res)
	}

	return report, nil
}

func (c *Checker) check(ctx context.Context, ep endpoint) Result {
	start := time.Now()
	res := Result{Path: ep.path}

	statusCode, body, err := c.get(ctx, ep.path)
	res.StatusCode = statusCode
	if err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	res.Err = verify(statusCode, body, ep.rules)
	res.Elapsed = time.Since(start)

	return res
}

func (c *Checker) get(ctx context.Context, path string) (int, []byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, apperrors.Wrapf(err, apperrors.Internal, "요청(%s)을 생성하는데 실패했습니다", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, apperrors.Wrapf(err, apperrors.Unavailable, "서버(%s%s)에 연결할 수 없습니다", c.baseURL, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, apperrors.Wrapf(err, apperrors.Unavailable, "응답 본문(%s)을 읽는데 실패했습니다", path)
	}

	return resp.StatusCode, body, nil
}

// verify 상태 코드와 본문을 검증하고 첫 번째 실패를 반환합니다.
func verify(statusCode int, body []byte, rules []rule) error {
	if statusCode != http.StatusOK {
		return apperrors.Newf(apperrors.ExecutionFailed, "응답 상태 코드가 %d입니다 (기대: %d)", statusCode, http.StatusOK)
	}
	if !gjson.ValidBytes(body) {
		return apperrors.New(apperrors.ExecutionFailed, "응답 본문이 올바른 JSON이 아닙니다")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return apperrors.New(apperrors.ExecutionFailed, "응답 본문이 JSON 객체가 아닙니다")
	}

	for _, r := range rules {
		if err := r(parsed); err != nil {
			return err
		}
	}

	return nil
}
