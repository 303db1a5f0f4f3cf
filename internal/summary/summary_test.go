package summary

import (
	"bytes"
	"crawlfilter/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLinkRows(t *testing.T) {
	var buf bytes.Buffer
	out := Render(&buf, "links (consolidate)", LinkRows(models.RunStats{Inputs: 1, Lines: 10, Emitted: 6, Skipped: 3, Suppressed: 1}))

	assert.Contains(t, out, "links (consolidate)")
	assert.Contains(t, out, "Suppressed (widgets)")
	assert.Contains(t, out, "Skipped (level)")
	assert.Contains(t, buf.String(), out)
}

func TestPathRows(t *testing.T) {
	rows := PathRows(models.RunStats{Inputs: 2, Lines: 4, Emitted: 40, Rewritten: 12})

	assert.Len(t, rows, 4)
	assert.Equal(t, "Paths", rows[2][0])
	assert.Equal(t, 40, rows[2][1])
	assert.Equal(t, 12, rows[3][1])
}
