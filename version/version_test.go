package version

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	origVersion, origCommit, origDate := Version, Commit, Date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	Version, Commit, Date = "dev", "unknown", "unknown"
	t.Cleanup(func() {
		readBuildInfo = orig
		Version, Commit, Date = origVersion, origCommit, origDate
	})
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name    string
		info    *debug.BuildInfo
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name: "no build info",
			want: "development",
		},
		{
			name: "devel module",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "development",
		},
		{
			name: "module version with vcs",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
				},
			},
			want: "v0.3.1 (0123456, built 2024-05-01T10:00:00Z)",
		},
		{
			name:    "ldflags win",
			info:    &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			version: "v1.0.0",
			commit:  "fedcba9876543210",
			want:    "v1.0.0 (fedcba9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.info)
			if tt.version != "" {
				Version = tt.version
			}
			if tt.commit != "" {
				Commit = tt.commit
			}
			if tt.date != "" {
				Date = tt.date
			}
			if got := GetFullVersion(); got != tt.want {
				t.Errorf("GetFullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
