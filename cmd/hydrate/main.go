package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hydrate/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┬ ┬┌┬┐┬─┐┌─┐┌┬┐┌─┐
  ╠═╣└┬┘ ││├┬┘├─┤ │ ├┤
  ╩ ╩ ┴ ─┴┘┴└─┴ ┴ ┴ └─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "hydrate",
		Short: "Check server-rendered HTML against expected render trees",
		Long: `Hydrate matches expected render trees against server-rendered HTML
and reports every place the two disagree.

Mismatch diagnostics show the divergence as a readable diff of the
surrounding markup, with one warning per check so a single bug does
not flood the log.

  • Structural matching: tags, text, attributes
  • Unified-diff style mismatch warnings
  • Prometheus metrics and trace spans per check
  • Optional S3 report uploads and a browser overlay`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		checkCmd(),
		serveCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the hydrate ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
