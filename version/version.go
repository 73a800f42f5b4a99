// Package version holds build information for the schemacomment binary.
package version

import (
	"cmp"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// String returns the build information as one line, for --version output.
// Fields that were not set at build time are omitted.
func String() string {
	var sb strings.Builder

	sb.WriteString(cmp.Or(Version, "devel"))
	fmt.Fprintf(&sb, " (revision: %s", Revision)

	if Branch != "" {
		fmt.Fprintf(&sb, ", branch: %s", Branch)
	}

	if BuildUser != "" {
		fmt.Fprintf(&sb, ", built by: %s", BuildUser)
	}

	if BuildDate != "" {
		fmt.Fprintf(&sb, ", built at: %s", BuildDate)
	}

	fmt.Fprintf(&sb, ", %s %s/%s)", GoVersion, GoOS, GoArch)

	return sb.String()
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
