package deps

import (
	"strings"

	"gopkg.in/ini.v1"
)

// extractPipfile reads the [packages] and [dev-packages] sections of a
// Pipfile. The file is TOML, but pipenv's dependency sections are flat
// key/value pairs an ini parser handles fine; entries using inline tables
// carry no bare version and map to "latest".
func extractPipfile(fs FSReader, out map[string]string) {
	if !fs.Has("Pipfile") {
		return
	}

	f, err := ini.Load([]byte(fs.Read("Pipfile")))
	if err != nil {
		return
	}

	for _, section := range []string{"packages", "dev-packages"} {
		s, err := f.GetSection(section)
		if err != nil {
			continue
		}
		for _, key := range s.Keys() {
			out[key.Name()] = cleanPipfileVersion(key.Value())
		}
	}
}

func cleanPipfileVersion(raw string) string {
	v := strings.Trim(strings.TrimSpace(raw), `"'`)
	if strings.HasPrefix(v, "{") {
		return "latest"
	}
	v = strings.TrimLeft(v, "=<>~^!")
	v = strings.TrimSpace(v)
	if v == "" || v == "*" {
		return "latest"
	}
	return v
}
