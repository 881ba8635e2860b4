// Package errors 애플리케이션 전용 에러 타입을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, Wrap으로 원인 에러에 문맥을 덧붙일 수 있습니다.
//
//	if err := k.Load(...); err != nil {
//	    return errors.Wrap(err, errors.System, "환경 변수 로드에 실패했습니다")
//	}
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // 설정 오류 처리
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"path"
)

// AppError 분류(ErrorType)와 메시지, 원인 에러, 생성 위치를 함께 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// newAppError 공개 생성 함수에서만 호출해야 스택의 첫 프레임이 호출자 위치가 됩니다.
func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Type 에러 분류를 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 메시지를 반환합니다.
func (e *AppError) Message() string { return e.message }

// Stack 에러가 생성된 위치의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause == nil {
		return "[" + e.errType.String() + "] " + e.message
	}
	return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v는 메시지와 호출 스택, 원인 에러 체인을 여러 줄로 출력합니다.
// 호출 스택은 체인에서 가장 안쪽 AppError의 것만 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.formatDetailed(s)
	case verb == 'v', verb == 's':
		_, _ = io.WriteString(s, e.Error())
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) formatDetailed(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	var inner *AppError
	if e.cause == nil || !errors.As(e.cause, &inner) {
		writeStack(s, e.stack)
	}

	if e.cause == nil {
		return
	}

	_, _ = io.WriteString(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
		return
	}
	fmt.Fprintf(s, "\t%v", e.cause)
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	_, _ = io.WriteString(w, "\nStack trace:")
	for _, f := range stack {
		// github.com/x/y/pkg.Func -> pkg.Func
		fmt.Fprintf(w, "\n\t%s:%d %s", f.File, f.Line, path.Base(f.Function))
	}
}

// New 원인 에러 없이 새 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf New와 같으며 메시지를 포맷 문자열로 만듭니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err를 원인으로 하는 새 에러를 생성합니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf Wrap과 같으며 메시지를 포맷 문자열로 만듭니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인 안에 errType으로 분류된 AppError가 하나라도 있으면 true를 반환합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 라이브러리 errors.As를 그대로 호출합니다. 이 패키지만 import해도 되도록 제공합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인을 끝까지 따라가 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}
