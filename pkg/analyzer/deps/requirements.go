package deps

import (
	"regexp"
	"strings"
)

// Requirement is one parsed line of a pip requirements file.
type Requirement struct {
	Name    string
	Version string
}

// requirementPattern matches "name", "name==1.2" and friends. The
// comparator group is discarded; only the bare version token is kept.
var requirementPattern = regexp.MustCompile(`^([a-zA-Z0-9_-]+)([=><]+)?([\d.]+)?`)

// ParseLine parses a single requirements.txt line. The second return is
// false for blank lines, comments, and lines the pattern does not match;
// such lines contribute nothing.
func ParseLine(line string) (Requirement, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Requirement{}, false
	}

	m := requirementPattern.FindStringSubmatch(line)
	if m == nil {
		return Requirement{}, false
	}

	version := m[3]
	if version == "" {
		version = "latest"
	}
	return Requirement{Name: m[1], Version: version}, true
}
