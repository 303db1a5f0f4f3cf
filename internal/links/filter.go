// Package links projects, normalizes and de-duplicates crawler link records.
package links

import (
	"context"
	"crawlfilter/internal/jsonl"
	"crawlfilter/internal/logging"
	"crawlfilter/internal/models"
	"io"

	"github.com/tidwall/gjson"
)

// Filter turns link records into tab-separated rows.
//
// A Filter holds the widget occurrences seen so far, so one Filter is one run.
type Filter struct {
	mode     Mode
	rules    []models.FindReplace
	embedded models.EmbeddedSet
	stats    models.RunStats
}

// NewFilter returns a Filter for mode. Rules only apply in consolidate mode.
func NewFilter(mode Mode, rules []models.FindReplace) *Filter {
	return &Filter{
		mode:     mode,
		rules:    rules,
		embedded: models.NewEmbeddedSet(),
	}
}

// Stats returns the counters accumulated so far.
func (f *Filter) Stats() models.RunStats {
	return f.stats
}

// Run reads records from src, one per line, and writes rows to w.
func (f *Filter) Run(ctx context.Context, input string, src io.Reader, w io.Writer) error {
	f.stats.Inputs++
	return jsonl.Each(ctx, input, src, func(rec gjson.Result) error {
		f.stats.Lines++
		row, ok, err := f.Process(rec)
		if err != nil || !ok {
			return err
		}
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
		f.stats.Emitted++
		return nil
	})
}

// Process returns the output row for one record, or false if it yields none.
func (f *Filter) Process(rec gjson.Result) (row string, ok bool, err error) {
	if f.mode != ModeConsolidate {
		lr, err := Decode(rec)
		if err != nil {
			return "", false, err
		}
		return lr.Row(), true, nil
	}

	info, err := isInfoLevel(rec)
	if err != nil {
		return "", false, err
	}
	if !info {
		f.stats.Skipped++
		return "", false, nil
	}

	lr, err := Decode(rec)
	if err != nil {
		return "", false, err
	}
	if !consolidate(lr, f.embedded, f.rules) {
		f.stats.Suppressed++
		logging.D(3, "Suppressed repeated widget %s", models.NewEmbeddedKey(lr.Src, lr.Tag))
		return "", false, nil
	}
	return lr.Row(), true, nil
}
