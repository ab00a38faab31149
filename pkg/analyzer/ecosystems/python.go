package ecosystems

import "strings"

// detectPython applies the Python rules when requirements.txt or
// pyproject.toml exists. Flask/FastAPI are told apart by a best-effort
// text scan of requirements.txt; Django is marked by manage.py alone.
func detectPython(fs FSReader, info *ProjectInfo) {
	if !fs.Has("requirements.txt") && !fs.Has("pyproject.toml") {
		return
	}

	info.Language = "Python"

	if fs.Has("manage.py") {
		info.Type, info.Framework = TypeBackend, "Django"
	} else if fs.Has("app.py") || fs.Glob("app/*.py") {
		reqs := strings.ToLower(fs.Read("requirements.txt"))
		if strings.Contains(reqs, "flask") {
			info.Type, info.Framework = TypeBackend, "Flask"
		} else if strings.Contains(reqs, "fastapi") {
			info.Type, info.Framework = TypeBackend, "FastAPI"
		}
	}

	info.PackageManager = DetectPythonPackageManager(fs)
}
