package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateProjectPath checks that the path exists and is a directory, and
// returns it cleaned and absolute.
func ValidateProjectPath(projectPath string) (string, error) {
	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", projectPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", projectPath)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return projectPath, nil
	}
	return absPath, nil
}

// ProjectNameFromPath derives a display name from the last path element.
func ProjectNameFromPath(projectPath string) string {
	name := filepath.Base(filepath.Clean(projectPath))
	if name == "." || name == string(filepath.Separator) {
		return "project"
	}
	return strings.TrimSpace(name)
}
