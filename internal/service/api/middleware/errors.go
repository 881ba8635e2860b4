package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/httputil"
)

var (
	// ErrBodyReadFailed 네트워크 문제 등으로 요청 본문을 읽지 못했을 때 반환하는 에러입니다.
	ErrBodyReadFailed = httputil.NewBadRequestError(constants.ErrMsgBadRequestBodyReadFailed)

	// ErrInvalidJSON 요청 본문이 JSON 객체나 배열이 아닐 때 반환하는 에러입니다.
	ErrInvalidJSON = httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
