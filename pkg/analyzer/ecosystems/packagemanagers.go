package ecosystems

// DetectJSPackageManager infers the JavaScript package manager from
// lockfiles. Returns "" when no lockfile is present; the JS block leaves
// the field untouched in that case rather than guessing npm.
func DetectJSPackageManager(fs FSReader) string {
	switch {
	case fs.Has("bun.lockb") || fs.Has("bun.lock"):
		return "bun"
	case fs.Has(".yarnrc.yml"):
		return "yarn-berry"
	case fs.Has("pnpm-lock.yaml"):
		return "pnpm"
	case fs.Has("yarn.lock"):
		return "yarn"
	case fs.Has("package-lock.json"):
		return "npm"
	default:
		return ""
	}
}

// DetectPythonPackageManager infers the Python package manager from
// lockfiles, defaulting to pip.
func DetectPythonPackageManager(fs FSReader) string {
	switch {
	case fs.Has("uv.lock"):
		return "uv"
	case fs.Has("pdm.lock"):
		return "pdm"
	case fs.Has("poetry.lock"):
		return "poetry"
	case fs.Has("Pipfile.lock"):
		return "pipenv"
	default:
		return "pip"
	}
}
