// Package version holds build metadata injected with -ldflags, falling back
// to the module build info.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Set at link time:
//
//	-X github.com/Sumatoshi-tech/advent/pkg/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills unset fields from the embedded build info.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	apply(info)
}

func apply(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == unknown {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == unknown {
				Date = s.Value
			}
		}
	}
}

// String renders "advent VERSION (commit: C, built: D)".
func String() string {
	return fmt.Sprintf("advent %s (commit: %s, built: %s)", Version, Commit, Date)
}
