package consts

// Log file keys.
const (
	LogError   = "ERROR: "
	LogInfo    = "Info: "
	LogWarning = "Warning: "
	LogDebug   = "Debug: "
)

// Log file settings.
const (
	LogFilename   = "crawlfilter.log"
	LogMaxSizeMB  = 1
	LogMaxBackups = 3
)

// Debug level bounds.
const (
	DebugLevelMin = 0
	DebugLevelMax = 5
)
