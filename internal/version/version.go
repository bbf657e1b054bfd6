package version

// Version is overridden at build time with -ldflags.
var (
	Version = "v0.3.0"
	Commit  = "dev"
	Date    = "unknown"
)

func FullVersion() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
