package smoke

import (
	"fmt"

	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"github.com/hashicorp/go-retryablehttp"
)

const component = "smoke.checker"

// leveledLogger retryablehttp의 내부 로그를 애플리케이션 로거로 보냅니다.
type leveledLogger struct {
	entry *applog.Entry
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func newLeveledLogger() leveledLogger {
	return leveledLogger{entry: applog.WithComponent(component)}
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Info(msg)
}

// Debug 시도마다 남는 요청 로그라 Debug 레벨로 유지합니다.
func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Warn(msg)
}

// toFields key, value 쌍의 목록을 Fields로 변환합니다. 짝이 맞지 않는 마지막 키는 "extra"로 기록합니다.
func toFields(keysAndValues []interface{}) applog.Fields {
	fields := make(applog.Fields, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			fields["extra"] = key
			break
		}
		fields[key] = keysAndValues[i+1]
	}

	return fields
}
