// Package version reports what build of the service is running.
package version

// Stamped at build time, e.g.
// -ldflags "-X 'paychat/internal/core/version.version=v0.1.0'
//
//	-X 'paychat/internal/core/version.commit=abcd'
//	-X 'paychat/internal/core/version.date=2026-08-31'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the shape the meta endpoints expose
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build information
func Info() BuildInfo {
	return BuildInfo{
		Service: "paychat-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
