// Package version reports the build identity of the django2gorm binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags. Values left at "unknown" are filled from
// the module build info when the binary was built with VCS stamping.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// Get resolves the build identity from ldflags and the embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// String returns the version string shown by --version and the version
// command.
func String() string {
	return Get().String()
}

// String renders the identity as "django2gorm <version> (commit: ..., built: ...)".
func (i Info) String() string {
	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("django2gorm %s (commit: %s, built: %s)", i.Version, commit, i.BuildTime)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
