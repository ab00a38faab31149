// Package analyzer inspects a project directory's manifest files and
// summarizes its technology stack. The whole run is a single read-only
// pass: ecosystem detection, dependency extraction, then the independent
// feature detectors. No detector failure escapes Analyze; missing or
// malformed inputs degrade to empty fields.
package analyzer

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"stackscan/pkg/analyzer/deps"
	"stackscan/pkg/analyzer/ecosystems"
	"stackscan/pkg/analyzer/features"
	"stackscan/pkg/util"
)

// Analyze runs the full pipeline against a directory on the local
// filesystem.
func Analyze(root string) AnalysisResult {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return analyze(NewFSReader(os.DirFS(root)), abs, util.ProjectNameFromPath(abs))
}

// AnalyzeFS runs the pipeline against an arbitrary fs.FS. ProjectRoot and
// ProjectName are left empty; fstest.MapFS fixtures have no meaningful
// path.
func AnalyzeFS(fsys fs.FS) AnalysisResult {
	return analyze(NewFSReader(fsys), "", "")
}

func analyze(reader *FSReader, root, name string) AnalysisResult {
	info := ecosystems.Detect(reader)
	dependencies := deps.Extract(reader)

	return AnalysisResult{
		ProjectRoot:      root,
		ProjectName:      name,
		ProjectType:      info.Type,
		Framework:        info.Framework,
		Language:         info.Language,
		PackageManager:   info.PackageManager,
		RuntimeVersion:   runtimeVersion(reader, info.Language),
		MonorepoTool:     monorepoTool(reader),
		Dependencies:     dependencies,
		Database:         features.DetectDatabase(reader, dependencies),
		Auth:             features.DetectAuth(dependencies),
		PaymentProviders: features.DetectPaymentProviders(dependencies),
		EmailProviders:   features.DetectEmailProviders(dependencies),
		Hosting:          features.DetectHosting(reader),
	}
}

// EmitJSON writes the result as indented JSON, the canonical output
// format.
func EmitJSON(w io.Writer, result AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
