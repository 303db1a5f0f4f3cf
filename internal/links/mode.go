package links

import (
	"fmt"
	"strings"
)

// Mode selects how records are filtered.
type Mode string

// Filter modes.
const (
	ModePlain       Mode = "plain"
	ModeConsolidate Mode = "consolidate"
)

// ParseMode validates a user-entered mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModePlain, ModeConsolidate:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode %q (valid: %s, %s)", s, ModePlain, ModeConsolidate)
	}
}
