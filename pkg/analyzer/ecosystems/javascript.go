package ecosystems

import "encoding/json"

const langJS = "JavaScript/TypeScript"

// detectJavaScript applies the JS/TS framework rules when package.json
// exists. A malformed package.json aborts the whole block, including the
// lockfile scan, so the block contributes nothing.
func detectJavaScript(fs FSReader, info *ProjectInfo) {
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

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDeps))
	for name, version := range pkg.Dependencies {
		deps[name] = version
	}
	for name, version := range pkg.DevDeps {
		deps[name] = version
	}

	has := func(name string) bool {
		_, ok := deps[name]
		return ok
	}

	switch {
	case has("next"):
		info.Type, info.Framework, info.Language = TypeFrontend, "Next.js", langJS
	case has("react") && has("react-dom"):
		info.Type, info.Framework, info.Language = TypeFrontend, "React", langJS
	case has("vue"):
		info.Type, info.Framework, info.Language = TypeFrontend, "Vue.js", langJS
	case has("express"):
		info.Type, info.Framework, info.Language = TypeBackend, "Express.js", langJS
	case has("nestjs") || has("@nestjs/core"):
		info.Type, info.Framework, info.Language = TypeBackend, "NestJS", "TypeScript"
	}

	if pm := DetectJSPackageManager(fs); pm != "" {
		info.PackageManager = pm
	}
}
