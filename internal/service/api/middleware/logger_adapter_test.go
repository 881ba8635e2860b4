package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newAdapter() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&applog.JSONFormatter{})
	l.SetLevel(applog.TraceLevel)

	return Logger{Logger: l}, buf
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    applog.Level
		expected log.Lvl
	}{
		{applog.TraceLevel, log.DEBUG},
		{applog.DebugLevel, log.DEBUG},
		{applog.InfoLevel, log.INFO},
		{applog.WarnLevel, log.WARN},
		{applog.ErrorLevel, log.ERROR},
		{applog.FatalLevel, log.OFF},
		{applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		l, _ := newAdapter()
		l.Logger.SetLevel(tt.level)
		assert.Equal(t, tt.expected, l.Level(), tt.level.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lvl      log.Lvl
		expected applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		l, _ := newAdapter()
		l.SetLevel(tt.lvl)
		assert.Equal(t, tt.expected, l.Logger.Level)
	}

	// OFF는 대응하는 레벨이 없으므로 변경하지 않습니다.
	l, _ := newAdapter()
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.TraceLevel, l.Logger.Level)
}

func TestLogger_Delegation(t *testing.T) {
	t.Parallel()

	l, buf := newAdapter()

	l.Infof("hello %s", "echo")
	assert.Contains(t, buf.String(), "hello echo")
	assert.Contains(t, buf.String(), `"component":"api.echo"`)

	buf.Reset()
	l.Warnj(log.JSON{"key": "value"})
	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)

	buf.Reset()
	l.Error("failure")
	assert.Contains(t, buf.String(), "failure")

	assert.Equal(t, buf, l.Output())
	assert.Empty(t, l.Prefix())
}
