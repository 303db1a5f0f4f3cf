// Package regex handles and caches regex directives.
package regex

import (
	"crawlfilter/internal/domain/consts"
	"regexp"
	"strings"
	"sync"
)

// Regex cache.
var (
	AnsiEscape        *regexp.Regexp
	EmbeddedWidget    *regexp.Regexp
	MagnoliaCache     *regexp.Regexp
	ImageHandlerCache *regexp.Regexp

	// Initialize sync.Once for each compilation.
	ansiEscapeOnce        sync.Once
	embeddedWidgetOnce    sync.Once
	magnoliaCacheOnce     sync.Once
	imageHandlerCacheOnce sync.Once
)

// AnsiEscapeCompile compiles regex for ANSI escape codes.
func AnsiEscapeCompile() *regexp.Regexp {
	ansiEscapeOnce.Do(func() {
		AnsiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	})
	return AnsiEscape
}

// EmbeddedWidgetCompile compiles regex matching an embedded widget locator.
//
// Group 1 is the paragraph ID, group 2 the widget class.
func EmbeddedWidgetCompile() *regexp.Regexp {
	embeddedWidgetOnce.Do(func() {
		widgets := strings.Join([]string{
			regexp.QuoteMeta(consts.WidgetEvents),
			regexp.QuoteMeta(consts.WidgetTwitterFeed),
			regexp.QuoteMeta(consts.WidgetRSSItem),
		}, "|")
		EmbeddedWidget = regexp.MustCompile(`(?:^|/)div#([A-Za-z0-9]{8,12})\.column_paragraph/div\.(` + widgets + `)(?:/|$)`)
	})
	return EmbeddedWidget
}

// MagnoliaCacheCompile compiles regex for cache-busting Magnolia asset directories.
func MagnoliaCacheCompile() *regexp.Regexp {
	magnoliaCacheOnce.Do(func() {
		MagnoliaCache = regexp.MustCompile(`/magnoliaAssets/cache[a-z0-9]+/`)
	})
	return MagnoliaCache
}

// ImageHandlerCacheCompile compiles regex for cache-busting image handler directories.
func ImageHandlerCacheCompile() *regexp.Regexp {
	imageHandlerCacheOnce.Do(func() {
		ImageHandlerCache = regexp.MustCompile(`/cache[a-z0-9]+/imagehandler/`)
	})
	return ImageHandlerCache
}
