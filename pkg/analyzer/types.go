package analyzer

import (
	"stackscan/pkg/analyzer/ecosystems"
	"stackscan/pkg/analyzer/features"
)

// AnalysisResult is the full stack summary for one project directory.
// It is assembled once per run and never mutated afterwards.
type AnalysisResult struct {
	ProjectRoot      string              `json:"project_root"`
	ProjectName      string              `json:"project_name"`
	ProjectType      string              `json:"project_type"`
	Framework        string              `json:"framework,omitempty"`
	Language         string              `json:"language,omitempty"`
	PackageManager   string              `json:"package_manager,omitempty"`
	RuntimeVersion   string              `json:"runtime_version,omitempty"`
	MonorepoTool     string              `json:"monorepo_tool,omitempty"`
	Dependencies     map[string]string   `json:"dependencies"`
	Database         *features.Database  `json:"database,omitempty"`
	Auth             *features.Auth      `json:"auth,omitempty"`
	PaymentProviders []features.Provider `json:"payment_providers"`
	EmailProviders   []features.Provider `json:"email_providers"`
	Hosting          string              `json:"hosting,omitempty"`
}

// Aliases for the detector records, so downstream consumers of the result
// don't need to import the detector packages.
type (
	Project  = ecosystems.ProjectInfo
	Database = features.Database
	Auth     = features.Auth
	Provider = features.Provider
)
