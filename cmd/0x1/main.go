package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐ ─┐ ┬ ┬
  │ │ ┌┴┬┘ │
  └─┘ ┴ └─ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "0x1",
		Short: "The minimal Go web framework",
		Long: `0x1 builds web applications from plain Go functions.

Components are functions returning virtual nodes, state lives in
hooks, and pages render to HTML on the server or to the DOM in the
browser. Features include:

  • Element tree built with typed constructors
  • Positional hooks with per-component state
  • Server-side rendering with error containment
  • Hot reload development server
  • One-command deploys`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCmd(),
		devCmd(),
		buildCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
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
