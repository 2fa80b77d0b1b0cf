// Package version reports the build version of wellco2.
package version

// Set at build time with
// -ldflags "-X github.com/rshade/wellco2/pkg/version.version=v1.0.0 -X ...commit=abc123".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the version string, with the short commit when known.
func GetVersion() string {
	if commit == "" {
		return version
	}
	short := commit
	if len(short) > 7 { //nolint:mnd // Short git hash.
		short = short[:7]
	}
	return version + " (" + short + ")"
}
