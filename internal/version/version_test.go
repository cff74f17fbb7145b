package version

import (
	"runtime/debug"
	"testing"
)

func setBuildVars(t *testing.T, version, commit, built string) {
	t.Helper()
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild })
	Version, Commit, BuildTime = version, commit, built
}

func TestResolve_Ldflags(t *testing.T) {
	setBuildVars(t, "dev", "0123456789abcdef", "2026-10-19T00:00:00Z")

	bi := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "fedcba9876543210"},
		{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
	}}

	want := "django2gorm dev (commit: 0123456, built: 2026-10-19T00:00:00Z)"
	if got := resolve(bi).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolve_BuildInfoFallback(t *testing.T) {
	setBuildVars(t, "dev", "unknown", "unknown")

	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	want := "django2gorm v1.2.0 (commit: fedcba9-dirty, built: 2026-01-02T03:04:05Z)"
	if got := resolve(bi).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolve_DevelBuild(t *testing.T) {
	setBuildVars(t, "dev", "unknown", "unknown")

	got := resolve(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got.Version != "dev" || got.Commit != "unknown" || got.Modified {
		t.Errorf("resolve() = %+v", got)
	}

	if got := resolve(nil).String(); got != "django2gorm dev (commit: unknown, built: unknown)" {
		t.Errorf("nil build info: %q", got)
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit() = %q, want %q", got, "abc")
	}
}
