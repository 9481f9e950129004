package constants

// Files kept beside the executable.
const (
	ConfigFile = "cfg.txt"
	LogFile    = "Memory_saver.log"
)

// Log rotation for LogFile.
const (
	LogMaxSize    = 5 // MB
	LogMaxBackups = 3
	LogMaxAge     = 90 // days
)
