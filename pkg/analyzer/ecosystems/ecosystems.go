package ecosystems

// Project types reported in ProjectInfo.Type.
const (
	TypeFrontend = "frontend"
	TypeBackend  = "backend"
	TypeUnknown  = "unknown"
)

// FSReader provides filesystem probes for ecosystem detection
type FSReader interface {
	Has(path string) bool
	Read(path string) string
	DirExists(path string) bool
	Glob(pattern string) bool
}

// ProjectInfo describes the detected ecosystem of a project directory.
// Fields other than Type are empty when nothing matched.
type ProjectInfo struct {
	Type           string `json:"type"`
	Framework      string `json:"framework,omitempty"`
	Language       string `json:"language,omitempty"`
	PackageManager string `json:"package_manager,omitempty"`
}

// Detect inspects marker files and returns the project's ecosystem info.
//
// The ecosystem blocks run in a fixed order (JavaScript, Python, Ruby, Go,
// PHP, Java) and are not mutually exclusive: when a directory carries
// markers for several ecosystems, every matching block runs and later
// blocks overwrite the fields earlier ones set. The order is part of the
// output contract, so keep new ecosystems at the end.
func Detect(fs FSReader) ProjectInfo {
	info := ProjectInfo{Type: TypeUnknown}

	detectJavaScript(fs, &info)
	detectPython(fs, &info)
	detectRuby(fs, &info)
	detectGo(fs, &info)
	detectPHP(fs, &info)
	detectJava(fs, &info)

	return info
}
