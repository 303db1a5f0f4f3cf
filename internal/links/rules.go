package links

import (
	"bufio"
	"crawlfilter/internal/models"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrRuleSyntax marks a malformed rule file line.
var ErrRuleSyntax = errors.New("rule syntax")

// LoadRules reads a rule file from disk.
func LoadRules(path string) ([]models.FindReplace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseRules reads "<regexp>\t<replacement>" lines.
//
// Blank lines and lines starting with '#' are ignored.
func ParseRules(r io.Reader) ([]models.FindReplace, error) {
	var rules []models.FindReplace
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		find, replace, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: %w: expected <regexp><TAB><replacement>", n, ErrRuleSyntax)
		}
		re, err := regexp.Compile(strings.TrimSpace(find))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", n, ErrRuleSyntax, err)
		}
		rules = append(rules, models.FindReplace{Regexp: re, Replacement: replace})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
