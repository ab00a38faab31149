// Package report renders an analysis result as a styled terminal box. It
// is display-only; the JSON emitter remains the canonical output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"stackscan/pkg/analyzer"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	valueStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2).
			Width(64)
)

// Render formats the analysis result for interactive terminals.
func Render(result analyzer.AnalysisResult) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Stack Analysis: " + result.ProjectName))
	s.WriteString("\n\n")

	var content strings.Builder

	writeField(&content, "Project type", result.ProjectType)
	writeField(&content, "Framework", result.Framework)
	writeField(&content, "Language", result.Language)
	writeField(&content, "Package manager", result.PackageManager)
	writeField(&content, "Runtime version", result.RuntimeVersion)
	writeField(&content, "Monorepo tool", result.MonorepoTool)
	writeField(&content, "Hosting", result.Hosting)

	if result.Database != nil {
		db := result.Database.Type
		if result.Database.Driver != "" {
			db += " (" + result.Database.Driver + ")"
		}
		if result.Database.EnvConfigured {
			db += " [env configured]"
		}
		writeField(&content, "Database", db)
	}
	if result.Auth != nil {
		writeField(&content, "Auth", result.Auth.Provider+" ("+result.Auth.Package+")")
	}

	writeProviders(&content, "Payment providers", result.PaymentProviders)
	writeProviders(&content, "Email providers", result.EmailProviders)

	if len(result.Dependencies) > 0 {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render(fmt.Sprintf("Dependencies (%d):", len(result.Dependencies))))
		content.WriteString("\n")
		for _, name := range sortedKeys(result.Dependencies) {
			content.WriteString(itemStyle.Render("  " + name))
			content.WriteString(dimStyle.Render(" " + result.Dependencies[name]))
			content.WriteString("\n")
		}
	}

	s.WriteString(boxStyle.Render(content.String()))
	return s.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func writeProviders(b *strings.Builder, label string, providers []analyzer.Provider) {
	if len(providers) == 0 {
		return
	}
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString("\n")
	for _, p := range providers {
		b.WriteString(itemStyle.Render("  " + p.Provider))
		b.WriteString(dimStyle.Render(" via " + p.Package))
		b.WriteString("\n")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
