package cmd

import (
	"github.com/spf13/cobra"
)

// analyzeCmd is an explicit alias for the root behavior
var analyzeCmd = &cobra.Command{
	Use:   "analyze PROJECT_PATH",
	Short: "Analyze a project directory and report its stack",
	Long: Logo + `
Inspects manifest files, lockfiles, and marker files in the given directory
and reports the detected technology stack.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) {
	runRootCommand(cmd, args)
}
