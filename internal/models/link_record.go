package models

import (
	"crawlfilter/internal/domain/consts"
	"strconv"
	"strings"
)

// LinkRecord is one link discovered on a crawled page.
type LinkRecord struct {
	Src  string
	Tag  string
	URL  string
	Code int64
}

// Row renders the record as a tab-separated output line (without newline).
func (r *LinkRecord) Row() string {
	return strings.Join([]string{r.Src, r.Tag, r.URL, strconv.FormatInt(r.Code, 10)}, consts.FieldSeparator)
}
