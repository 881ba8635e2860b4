package httputil

import (
	"net/http"
	"time"

	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	"github.com/darkkaiser/cicd-demo-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, response.ErrorResponse{
		ResultCode: http.StatusBadRequest,
		Message:    message,
	})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.ErrorResponse{
		ResultCode: http.StatusTooManyRequests,
		Message:    message,
	})
}

// FormatTimestamp 응답 본문에 사용하는 ISO-8601 UTC 타임스탬프 문자열을 반환합니다. (예: 2025-01-01T09:30:00.123Z)
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}
