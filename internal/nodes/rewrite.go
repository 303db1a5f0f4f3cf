package nodes

import "strings"

// Rewrite turns a "/<site>" path prefix into a domain.
type Rewrite struct {
	Site   string
	Domain string
}

// Enabled reports whether both a site and a domain were configured.
func (rw Rewrite) Enabled() bool {
	return rw.Site != "" && rw.Domain != ""
}

// Apply replaces the first "/<site>" in path with the domain.
//
// The second return reports whether a replacement happened.
func (rw Rewrite) Apply(path string) (string, bool) {
	if !rw.Enabled() {
		return path, false
	}
	target := "/" + rw.Site
	if !strings.Contains(path, target) {
		return path, false
	}
	return strings.Replace(path, target, rw.Domain, 1), true
}
