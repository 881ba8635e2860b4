package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/stretchr/testify/require"
)

// captureLogs 테스트 동안 발생하는 로거 출력을 JSON 형식으로 캡처합니다.
// 전역 로거를 교체하므로 이 함수를 사용하는 테스트는 병렬로 실행하면 안 됩니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	originalOut := applog.StandardLogger().Out
	originalFormatter := applog.StandardLogger().Formatter
	originalLevel := applog.StandardLogger().Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
	})

	return buf
}

// parseLastLogEntry 버퍼에 기록된 마지막 JSON 로그를 파싱합니다.
func parseLastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	lines := strings.Split(output, "\n")
	lastLine := lines[len(lines)-1]

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastLine), &entry), "로그 파싱 실패: %s", lastLine)

	return entry
}
