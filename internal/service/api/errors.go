package api

import (
	apperrors "github.com/darkkaiser/cicd-demo-server/internal/pkg/errors"
)

// newListenError 수신 포트를 열지 못했을 때의 에러를 생성합니다.
func newListenError(err error, address string) error {
	return apperrors.Wrapf(err, apperrors.System, "HTTP 서버가 주소(%s)를 수신 대기하지 못했습니다", address)
}
