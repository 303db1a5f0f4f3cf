package models

import "regexp"

// FindReplace creates a pattern model for regex matching and replacing.
type FindReplace struct {
	Regexp      *regexp.Regexp
	Replacement string
}

// Apply replaces every match in s.
func (fr FindReplace) Apply(s string) string {
	return fr.Regexp.ReplaceAllString(s, fr.Replacement)
}
