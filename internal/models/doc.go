// Package models holds structs used throughout the crawlfilter program.
package models
