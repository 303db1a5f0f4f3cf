// Package consts holds constants used throughout the program.
package consts

// Node export keys.
const (
	NodePath     = "path"
	NodeChildren = "nodes"
)

// Link record keys.
const (
	RecSrc   = "src"
	RecTag   = "tag"
	RecURL   = "url"
	RecCode  = "code"
	RecLevel = "lvl"
)

// InfoLevel is the crawler log level carried by request records.
const InfoLevel = 3

// DefaultMaxDepth bounds node tree nesting.
const DefaultMaxDepth = 1000

// Embedded widget classes.
const (
	WidgetEvents      = "gato-events"
	WidgetTwitterFeed = "gato-twitter-feed"
	WidgetRSSItem     = "gato-rss-item"
)

// Cache-busting placeholders.
const (
	MagnoliaCacheReplacement     = "/magnoliaAssets/cache.../"
	ImageHandlerCacheReplacement = "/cache.../imagehandler/"
)

// Output.
const (
	FieldSeparator = "\t"
	StdinName      = "-"
)
