package mainboilerplate

var (
	// Version of the current build, set at compile time via
	// `-ldflags "-X .../mainboilerplate.Version=$(git describe --dirty)"`.
	Version = "development"
	// BuildDate of the current build, set at compile time.
	BuildDate = "unknown"
)
