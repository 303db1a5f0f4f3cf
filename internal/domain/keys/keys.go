// Package keys holds the Viper keys used across the program.
package keys

// Program keys.
const (
	ConfigPath string = "config"
	DebugLevel string = "debug-level"
	LogDir     string = "log-dir"
	Summary    string = "summary"
)

// Path collector keys.
const (
	Site     string = "site"
	Domain   string = "domain"
	MaxDepth string = "max-depth"
)

// Link filter keys.
const (
	Mode      string = "mode"
	RulesFile string = "rules"
)

// Internal keys (set by the program, not the user).
const (
	Execute string = "execute"
)
