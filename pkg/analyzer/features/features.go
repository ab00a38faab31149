// Package features holds the independent stack-feature detectors. Each one
// matches dependency names case-insensitively against a fixed keyword
// table; tables are ordered slices, never maps, because table order is the
// tie-break and part of the output contract.
package features

import (
	"sort"
	"strings"
)

// FSReader provides filesystem probes for feature detection
type FSReader interface {
	Has(path string) bool
	Read(path string) string
}

// Provider is one detected third-party integration.
type Provider struct {
	Provider string `json:"provider"`
	Package  string `json:"package"`
}

// keywordEntry maps one result label to the dependency-name substrings
// that indicate it.
type keywordEntry struct {
	label    string
	keywords []string
}

// sortedNames returns the dependency names in lexical order so matching is
// deterministic regardless of map iteration order.
func sortedNames(deps map[string]string) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// firstMatch returns the first dependency containing any of the keywords,
// case-insensitively.
func firstMatch(names []string, keywords []string) (string, bool) {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return name, true
			}
		}
	}
	return "", false
}

// detectProviders collects every table entry with a matching dependency,
// in table order, recording at most one package per entry.
func detectProviders(table []keywordEntry, deps map[string]string) []Provider {
	providers := []Provider{}
	names := sortedNames(deps)

	for _, entry := range table {
		if pkg, ok := firstMatch(names, entry.keywords); ok {
			providers = append(providers, Provider{Provider: entry.label, Package: pkg})
		}
	}
	return providers
}
