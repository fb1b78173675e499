package version

// Values are set via ldflags on release builds.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	FullVersion = Version + " (" + Commit + ", " + BuildDate + ")"
)
