package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildVars(t *testing.T, v, commit, date, arch string) {
	t.Helper()

	orig := []string{Version, Commit, BuildDate, BuildArch}
	Version, Commit, BuildDate, BuildArch = v, commit, date, arch
	t.Cleanup(func() {
		Version, Commit, BuildDate, BuildArch = orig[0], orig[1], orig[2], orig[3]
	})
}

func TestGetUsesFallbacks(t *testing.T) {
	setBuildVars(t, "", " ", "", "")

	info := Get()

	require.Equal(t, "dev", info.Version)
	require.Equal(t, "unknown", info.Commit)
	require.Equal(t, "unknown", info.BuildDate)
	require.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	require.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGetRespectsProvidedValues(t *testing.T) {
	setBuildVars(t, "1.2.0", "abcd1234ef", "2026-10-01", "custom/arch")

	info := Get()

	require.Equal(t, "1.2.0", info.Version)
	require.Equal(t, "abcd1234ef", info.Commit)
	require.Equal(t, "2026-10-01", info.BuildDate)
	require.Equal(t, "custom/arch", info.Platform)
}

func TestShort(t *testing.T) {
	require.Equal(t, "1.2.0 (abcd123)", Info{Version: "1.2.0", Commit: "abcd1234ef"}.Short())
	require.Equal(t, "dev (unknown)", Info{Version: "dev", Commit: "unknown"}.Short())
}

func TestStringListsEveryField(t *testing.T) {
	setBuildVars(t, "1.2.0", "abcd123", "2026-10-01", "linux/amd64")

	out := Get().String()

	require.Contains(t, out, "dryspot 1.2.0\n")
	require.Contains(t, out, "commit:   abcd123")
	require.Contains(t, out, "built:    2026-10-01")
	require.Contains(t, out, "platform: linux/amd64")
	require.Contains(t, out, "go:       "+runtime.Version())
}

func TestUserAgent(t *testing.T) {
	require.Equal(t, "dryspot/0.3.1", Info{Version: "0.3.1"}.UserAgent())
}

func TestFallback(t *testing.T) {
	require.Equal(t, "default", fallback("", "default"))
	require.Equal(t, "value", fallback(" value ", "default"))
}
