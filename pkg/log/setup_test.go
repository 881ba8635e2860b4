package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ConsoleOnly(t *testing.T) {
	resetForTest()
	defer resetForTest()

	buf := new(bytes.Buffer)
	c, err := Setup(Options{
		Name:             "console-app",
		EnableConsoleLog: true,
		Console:          buf,
	})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "Level 미지정 시 Info여야 합니다")

	WithComponentAndFields("api.service", Fields{"port": 3000}).Info("서버 시작")
	WithComponent("api.service").Debug("보이지 않아야 함")

	out := buf.String()
	assert.Contains(t, out, "서버 시작")
	assert.Contains(t, out, "component=api.service")
	assert.Contains(t, out, "port=3000")
	assert.NotContains(t, out, "보이지 않아야 함")
}

func TestSetup_Once(t *testing.T) {
	resetForTest()
	defer resetForTest()

	first, err := Setup(Options{Name: "once", EnableConsoleLog: true, Console: new(bytes.Buffer)})
	require.NoError(t, err)
	defer first.Close()

	second, err := Setup(Options{Name: "ignored"})
	require.NoError(t, err, "두 번째 호출은 최초 결과를 그대로 반환해야 합니다")
	assert.Same(t, first, second)
}

func TestSetup_InvalidOptions(t *testing.T) {
	resetForTest()
	defer resetForTest()

	c, err := Setup(Options{})
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "유효하지 않은 로그 설정")
}

func TestSetup_FileOutput(t *testing.T) {
	resetForTest()
	defer resetForTest()

	dir := filepath.Join(t.TempDir(), "logs")
	c, err := Setup(Options{
		Name:              "file-app",
		Level:             TraceLevel,
		Dir:               dir,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)

	WithComponent("test").Info("info-message")
	WithComponent("test").Error("error-message")
	WithComponent("test").Debug("debug-message")

	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "file-app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info-message")
	assert.Contains(t, string(mainLog), "error-message")
	assert.NotContains(t, string(mainLog), "debug-message", "Debug 로그는 메인 파일에 기록되지 않아야 합니다")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "file-app.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "error-message")
	assert.NotContains(t, string(criticalLog), "info-message")

	verboseLog, err := os.ReadFile(filepath.Join(dir, "file-app.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verboseLog), "debug-message")
}

func TestSetDebugMode(t *testing.T) {
	resetForTest()
	defer resetForTest()

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}
