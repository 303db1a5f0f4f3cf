package consts

// Colors.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[96m"
)

// Tags.
const (
	ColorRedError      string = ColorRed + "[ERROR] " + ColorReset
	ColorYellowDebug   string = ColorYellow + "[Debug] " + ColorReset
	ColorYellowWarning string = ColorYellow + "[Warning] " + ColorReset
	ColorBlueInfo      string = ColorCyan + "[Info] " + ColorReset
)
