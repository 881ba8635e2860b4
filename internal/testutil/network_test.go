package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)

	// 반환된 포트는 곧바로 다시 바인딩할 수 있어야 합니다.
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	l.Close()
}

func TestWaitForServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	assert.NoError(t, WaitForServer(port, time.Second))
}

func TestWaitForServer_Timeout(t *testing.T) {
	port, err := GetFreePort()
	require.NoError(t, err)

	err = WaitForServer(port, 50*time.Millisecond)
	assert.Error(t, err)
}
