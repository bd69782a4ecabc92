package constant

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// MPVInstallHints suggests how to get mpv on each platform.
var MPVInstallHints = map[string]string{
	Linux:   "install the mpv package from your distribution, e.g. sudo apt install mpv",
	Darwin:  "brew install mpv",
	Windows: "scoop install mpv",
}
