package errors

import (
	"path/filepath"
	"runtime"
)

const (
	// defaultCallerSkip runtime.Callers, captureStack, newAppError, 공개 생성 함수(New, Wrap 등)를 건너뜁니다.
	defaultCallerSkip = 4

	// maxStackDepth 수집할 최대 프레임 수
	maxStackDepth = 5
)

// StackFrame 호출 스택의 한 위치입니다. File은 디렉토리를 제외한 파일명입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return nil
	}

	stack := make([]StackFrame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		stack = append(stack, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
	}

	return stack
}
