// Package deps extracts a flat name→version dependency map from the
// manifest files a project directory carries. Every source is best-effort:
// a missing or malformed file contributes no entries and never fails the
// extraction.
package deps

import (
	"encoding/json"
	"strings"
)

// FSReader provides filesystem probes for dependency extraction
type FSReader interface {
	Has(path string) bool
	Read(path string) string
}

// Extract collects dependencies from every recognized manifest present in
// the directory. Versions are bare tokens: range markers are stripped and
// unpinned entries map to "latest".
func Extract(fs FSReader) map[string]string {
	out := map[string]string{}

	extractPackageJSON(fs, out)
	extractRequirements(fs, out)
	extractPipfile(fs, out)

	return out
}

// extractPackageJSON merges dependencies and devDependencies, in that
// order, so a devDependencies entry wins when both declare the same key.
func extractPackageJSON(fs FSReader, out map[string]string) {
	if !fs.Has("package.json") {
		return
	}

	var pkg struct {
		Dependencies map[string]string `json:"dependencies"`
		DevDeps      map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(fs.Read("package.json")), &pkg); err != nil {
		return
	}

	for name, version := range pkg.Dependencies {
		out[name] = strings.TrimLeft(version, "^~")
	}
	for name, version := range pkg.DevDeps {
		out[name] = strings.TrimLeft(version, "^~")
	}
}

func extractRequirements(fs FSReader, out map[string]string) {
	if !fs.Has("requirements.txt") {
		return
	}

	for _, line := range strings.Split(fs.Read("requirements.txt"), "\n") {
		if req, ok := ParseLine(line); ok {
			out[req.Name] = req.Version
		}
	}
}
