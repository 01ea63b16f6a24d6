// Package version reports the multispin build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/multispin/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/multispin/internal/version.Commit=abc123"
//
// Unset values are filled from the embedded build info: the module version
// of `go install ...@v1.2.3` builds, otherwise the VCS stamp ("dev-YYYYMMDD"
// and the short revision). Without either, Version is "dev-<now>".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(info)
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fill completes Version and Commit from build info.
func fill(info *debug.BuildInfo) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			Commit = shortRevision(rev)
			if settings["vcs.modified"] == "true" {
				Commit += "-dirty"
			}
		}
	}

	if Version != "" {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" && !strings.Contains(v, "+dirty") {
		Version = v
		return
	}
	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		Version = "dev-" + t.Format("20060102")
	}
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Full returns the version including the commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent returns the Server header value of remote session upgrades.
func UserAgent() string {
	return "multispin/" + Version
}
