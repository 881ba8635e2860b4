package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich(t *testing.T) {
	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		expected  Info
	}{
		{
			name:  "ldflags 값 우선",
			input: Info{Commit: "abcdef1234", BuildDate: "2025-01-01", BuildNumber: "42"},
			buildInfo: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "ffffffff"},
				{Key: "vcs.time", Value: "2024-12-31"},
			}},
			expected: Info{Commit: "abcdef1234", BuildDate: "2025-01-01", BuildNumber: "42"},
		},
		{
			name:  "VCS 메타데이터로 보강",
			input: Info{},
			buildInfo: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "1234567890"},
				{Key: "vcs.time", Value: "2025-02-02T00:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			}},
			expected: Info{Commit: "1234567890", BuildDate: "2025-02-02T00:00:00Z", DirtyBuild: true},
		},
		{
			name:     "빌드 정보 없음",
			input:    Info{},
			expected: Info{Commit: unknown, BuildDate: unknown},
		},
	}

	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.buildInfo, tt.buildInfo != nil
			}

			got := enrich(tt.input)

			tt.expected.GoVersion = runtime.Version()
			tt.expected.OS = runtime.GOOS
			tt.expected.Arch = runtime.GOARCH
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	i := Info{
		Commit:      "1234567890abcdef",
		BuildDate:   "2025-01-01",
		BuildNumber: "7",
		GoVersion:   "go1.24.0",
		OS:          "linux",
		Arch:        "amd64",
		DirtyBuild:  true,
	}
	assert.Equal(t, "commit: 1234567+dirty, build: 7, date: 2025-01-01, go1.24.0 linux/amd64", i.String())

	minimal := Info{Commit: unknown, BuildDate: unknown, GoVersion: "go1.24.0", OS: "linux", Arch: "arm64"}
	assert.Equal(t, "commit: unknown, go1.24.0 linux/arm64", minimal.String())
}

func TestInfo_ToMap(t *testing.T) {
	t.Parallel()

	m := Info{Commit: "c", BuildNumber: "1"}.ToMap()
	assert.Equal(t, "c", m["commit"])
	assert.Equal(t, "1", m["build_number"])
	assert.Contains(t, m, "dirty_build")
}

func TestGet(t *testing.T) {
	t.Parallel()

	bi := Get()
	assert.NotEmpty(t, bi.Commit)
	assert.Equal(t, runtime.GOOS, bi.OS)
	assert.Equal(t, bi, Get())
}
