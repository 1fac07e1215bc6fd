// Package version holds the build identity stamped in via -ldflags and
// reported by the healthz endpoint.
package version

import (
	"runtime"
	"time"
)

var (
	Version   = "dev"                           // release tag, ex: v0.1.0
	Commit    = "none"                          // short git sha
	BuildDate = time.Now().Format(time.RFC3339) // falls back to process start for dev builds
	GoVersion = runtime.Version()
)
