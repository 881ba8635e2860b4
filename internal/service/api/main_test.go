package api

import (
	"io"
	"testing"

	applog "github.com/darkkaiser/cicd-demo-server/pkg/log"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	applog.SetOutput(io.Discard)

	goleak.VerifyTestMain(m)
}
