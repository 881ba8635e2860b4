package middleware

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// JSONBody Content-Type이 application/json인 요청의 본문을 파싱하는 미들웨어를 반환합니다.
//
// 본문이 비어 있거나 Content-Type이 다르면 아무 것도 하지 않습니다.
// 본문은 JSON 객체 또는 배열이어야 하며, 그렇지 않으면 400으로 거부합니다.
// 파싱 결과(gjson.Result)는 constants.ContextKeyJSONBody 키로 Context에 저장되고,
// 원본 본문은 다음 핸들러가 다시 읽을 수 있도록 복원됩니다.
//
// BodyLimit 미들웨어 뒤에 배치해야 크기 제한 초과(413)가 그대로 전달됩니다.
func JSONBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody || !isJSONContentType(req.Header.Get(echo.HeaderContentType)) {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					return he
				}
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					return echo.ErrStatusRequestEntityTooLarge
				}
				return ErrBodyReadFailed
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			if len(bytes.TrimSpace(body)) == 0 {
				return next(c)
			}

			if !gjson.ValidBytes(body) {
				logInvalidJSON(c, "invalid_json")
				return ErrInvalidJSON
			}

			result := gjson.ParseBytes(body)
			if !result.IsObject() && !result.IsArray() {
				logInvalidJSON(c, "not_object_or_array")
				return ErrInvalidJSON
			}

			c.Set(constants.ContextKeyJSONBody, result)

			return next(c)
		}
	}
}

// isJSONContentType MIME 파라미터(charset 등)를 제외한 미디어 타입이 application/json인지 확인합니다.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == echo.MIMEApplicationJSON
}

func logInvalidJSON(c echo.Context, reason string) {
	applog.WithComponentAndFields(constants.ComponentMiddlewareJSONBody, applog.Fields{
		"reason":     reason,
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}).Debug(constants.LogMsgInvalidJSONBody)
}
