package ecosystems

// detectGo marks Go projects by go.mod. No framework rules: Go services
// are reported by language and type only.
func detectGo(fs FSReader, info *ProjectInfo) {
	if !fs.Has("go.mod") {
		return
	}

	info.Language = "Go"
	info.PackageManager = "go modules"
	info.Type = TypeBackend
}
