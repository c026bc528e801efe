package version

//nolint:gochecknoglobals
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
