package middleware

import (
	"io"

	"github.com/darkkaiser/cicd-demo-server/internal/service/api/constants"
	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 log.Logger 인터페이스를 구현하여 Echo 내부 로그를 애플리케이션 로거로 보내는 어댑터입니다.
type Logger struct {
	*applog.Logger
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

// Level 애플리케이션 로그 레벨을 Echo의 로그 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.Level {
	case applog.DebugLevel, applog.TraceLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}

	return log.OFF
}

// SetLevel Echo의 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) SetHeader(string) {}

// entry 모든 Echo 내부 로그에 component 필드를 붙입니다.
func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", constants.ComponentEcho)
}

func (l Logger) Print(i ...any) {
	l.entry().Print(i...)
}

func (l Logger) Printf(format string, args ...any) {
	l.entry().Printf(format, args...)
}

func (l Logger) Printj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Print()
}

func (l Logger) Debug(i ...any) {
	l.entry().Debug(i...)
}

func (l Logger) Debugf(format string, args ...any) {
	l.entry().Debugf(format, args...)
}

func (l Logger) Debugj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Debug()
}

func (l Logger) Info(i ...any) {
	l.entry().Info(i...)
}

func (l Logger) Infof(format string, args ...any) {
	l.entry().Infof(format, args...)
}

func (l Logger) Infoj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Info()
}

func (l Logger) Warn(i ...any) {
	l.entry().Warn(i...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.entry().Warnf(format, args...)
}

func (l Logger) Warnj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Warn()
}

func (l Logger) Error(i ...any) {
	l.entry().Error(i...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.entry().Errorf(format, args...)
}

func (l Logger) Errorj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Error()
}

func (l Logger) Fatal(i ...any) {
	l.entry().Fatal(i...)
}

func (l Logger) Fatalf(format string, args ...any) {
	l.entry().Fatalf(format, args...)
}

func (l Logger) Fatalj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Fatal()
}

func (l Logger) Panic(i ...any) {
	l.entry().Panic(i...)
}

func (l Logger) Panicf(format string, args ...any) {
	l.entry().Panicf(format, args...)
}

func (l Logger) Panicj(j log.JSON) {
	l.entry().WithFields(applog.Fields(j)).Panic()
}
