package analyzer

import "strings"

// runtimeVersion reads the conventional version-pin file for the detected
// language, if any.
func runtimeVersion(fs *FSReader, language string) string {
	switch language {
	case "JavaScript/TypeScript", "TypeScript":
		if fs.Has(".nvmrc") {
			return strings.TrimSpace(fs.Read(".nvmrc"))
		}
		if fs.Has(".node-version") {
			return strings.TrimSpace(fs.Read(".node-version"))
		}
	case "Python":
		if fs.Has(".python-version") {
			return strings.TrimSpace(fs.Read(".python-version"))
		}
		if fs.Has("runtime.txt") {
			// Heroku-style "python-3.11.0"
			return strings.TrimPrefix(strings.TrimSpace(fs.Read("runtime.txt")), "python-")
		}
	case "Ruby":
		if fs.Has(".ruby-version") {
			return strings.TrimSpace(fs.Read(".ruby-version"))
		}
	case "Go":
		if fs.Has(".go-version") {
			return strings.TrimSpace(fs.Read(".go-version"))
		}
	}
	return ""
}

// monorepoTool identifies the workspace tool, if any, by its config file.
func monorepoTool(fs *FSReader) string {
	switch {
	case fs.Has("turbo.json"):
		return "turborepo"
	case fs.Has("nx.json"):
		return "nx"
	case fs.Has("lerna.json"):
		return "lerna"
	case fs.Has("pnpm-workspace.yaml"):
		return "pnpm-workspaces"
	case strings.Contains(fs.Read("package.json"), `"workspaces"`):
		return "yarn-workspaces"
	default:
		return ""
	}
}
