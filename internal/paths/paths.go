// Package paths provides centralized path configuration for the application
package paths

// Paths holds all configurable paths for the application
type Paths struct {
	ConfigPath string // campuslink.json
	DataDir    string // database and uploaded files
	LogPath    string // bot log file
}

// Default returns the default paths for production use
func Default() Paths {
	return Paths{
		ConfigPath: "/etc/campuslink/campuslink.json",
		DataDir:    "/var/lib/campuslink",
		LogPath:    "/var/log/campuslink/bot.log",
	}
}

// Dev returns paths for local development relative to the working directory
func Dev() Paths {
	return Paths{
		ConfigPath: "testdata/dev/campuslink.json",
		DataDir:    "testdata/dev/data",
		LogPath:    "testdata/dev/bot.log",
	}
}
