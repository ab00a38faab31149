package cmd

import (
	"fmt"
	"os"

	"stackscan/cmd/ui/report"
	"stackscan/cmd/ui/spinner"
	"stackscan/pkg/analyzer"
	"stackscan/pkg/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	jsonOutput      bool
	skipInteractive bool

	logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
)

const Logo = `
███████╗████████╗ █████╗  ██████╗██╗  ██╗███████╗ ██████╗ █████╗ ███╗   ██╗
██╔════╝╚══██╔══╝██╔══██╗██╔════╝██║ ██╔╝██╔════╝██╔════╝██╔══██╗████╗  ██║
███████╗   ██║   ███████║██║     █████╔╝ ███████╗██║     ███████║██╔██╗ ██║
╚════██║   ██║   ██╔══██║██║     ██╔═██╗ ╚════██║██║     ██╔══██║██║╚██╗██║
███████║   ██║   ██║  ██║╚██████╗██║  ██╗███████║╚██████╗██║  ██║██║ ╚████║
╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

var rootCmd = &cobra.Command{
	Use:   "stackscan PROJECT_PATH",
	Short: "Summarize a project's technology stack from its manifest files",
	Long: Logo + `
Stackscan inspects a project directory's manifests, lockfiles, and marker
files and reports the detected framework, language, package manager,
dependencies, database, auth provider, payment/email integrations, and
hosting platform.

The analysis is static and read-only: nothing is built, resolved, or
fetched over the network.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	projectPath, err := util.ValidateProjectPath(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput || skipInteractive || !isTerminal() {
		result := analyzer.Analyze(projectPath)
		if err := analyzer.EmitJSON(os.Stdout, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Analyzing project..."))

	// Start spinner in background
	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// Suppress the "program was killed" error message since it's expected
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	result := analyzer.Analyze(projectPath)

	spinnerProgram.Quit()

	fmt.Println(report.Render(result))
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return os.Getenv("TERM") != ""
}

func init() {
	rootCmd.SetVersionTemplate("stackscan version {{.Version}}\n")

	rootCmd.AddCommand(analyzeCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive rendering (for CI/automation)")
}
