package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"

	// Global flags
	flagJSON  bool
	flagQuiet bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledgerview",
	Short: "Assistant server for Canton/DAML development",
	Long: `ledgerview exposes a fixed catalog of Canton/DAML assistant tools and
documentation resources to agent clients.

The same catalog is reachable over the MCP stdio protocol (for agent hosts)
and over a JSON REST facade (for everything else); both transports share one
dispatcher, so results never drift between them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
		os.Exit(getExitCode(err))
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")

	// Add all subcommands
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)
}

// GetVersion returns the version string
func GetVersion() string {
	if Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
