package links

import (
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/domain/regex"
	"crawlfilter/internal/models"
	"strings"
)

// matchWidget finds the leftmost embedded widget locator in tag.
func matchWidget(tag string) (widget, id string, ok bool) {
	m := regex.EmbeddedWidgetCompile().FindStringSubmatch(tag)
	if m == nil {
		return "", "", false
	}
	return m[2], m[1], true
}

// widgetTag renders the normalized tag of a widget, e.g. "gato-events(abcdefgh)".
func widgetTag(widget, id string) string {
	return widget + "(" + id + ")"
}

// NormalizeURL collapses cache-busting directories, then applies rules in order.
func NormalizeURL(url string, rules []models.FindReplace) string {
	url = regex.MagnoliaCacheCompile().ReplaceAllLiteralString(url, consts.MagnoliaCacheReplacement)
	url = regex.ImageHandlerCacheCompile().ReplaceAllLiteralString(url, consts.ImageHandlerCacheReplacement)
	for _, r := range rules {
		url = r.Apply(url)
	}
	return url
}

// lastSegment returns the part of tag after its final slash.
func lastSegment(tag string) string {
	if i := strings.LastIndexByte(tag, '/'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// consolidate normalizes a record in place.
//
// Embedded widgets are reduced to one row per page: the first occurrence
// is recorded in seen, and false is returned for later ones.
func consolidate(lr *models.LinkRecord, seen models.EmbeddedSet, rules []models.FindReplace) bool {
	if widget, id, ok := matchWidget(lr.Tag); ok {
		lr.URL = ""
		lr.Tag = widgetTag(widget, id)
		return seen.Add(models.NewEmbeddedKey(lr.Src, lr.Tag))
	}

	lr.URL = NormalizeURL(lr.URL, rules)
	lr.Tag = lastSegment(lr.Tag)
	return true
}
