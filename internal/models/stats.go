package models

// RunStats counts what a filter run did.
type RunStats struct {
	Inputs     int
	Lines      int
	Emitted    int
	Skipped    int
	Suppressed int
	Rewritten  int
}
