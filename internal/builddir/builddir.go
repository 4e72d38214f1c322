// Package builddir guesses where the build output of the surrounding
// source tree lives. The result seeds the configuration file search, so an
// unresolvable build directory is a soft failure: callers log a warning and
// carry on with the remaining search locations.
package builddir

import (
	"context"
	"fmt"
	"runtime"

	"github.com/avrkit/partscope/internal/ctxlog"
	"github.com/avrkit/partscope/internal/fsutil"
)

// windowsCandidates is the probe order on Windows, where the toolchain name
// is baked into the build directory.
var windowsCandidates = []string{"build_msvc/src", "build_mingw64/src"}

// Resolve returns the build directory for the host platform, or "" when no
// candidate exists on disk.
//
// On POSIX-like systems there is a single candidate derived from the OS
// name (e.g. build_linux/src). On Windows an ordered list of candidates is
// probed and the first existing one wins.
func Resolve(ctx context.Context) string {
	return resolve(ctx, runtime.GOOS)
}

func resolve(ctx context.Context, goos string) string {
	logger := ctxlog.FromContext(ctx)

	var dir string
	if goos == "windows" {
		dir = fsutil.FirstExistingDir(windowsCandidates)
	} else {
		dir = fsutil.FirstExistingDir([]string{fmt.Sprintf("build_%s/src", goos)})
	}

	if dir == "" {
		logger.Warn("Cannot determine build directory, continuing without it.", "os", goos)
		return ""
	}

	logger.Debug("Build directory resolved.", "dir", dir)
	return dir
}
