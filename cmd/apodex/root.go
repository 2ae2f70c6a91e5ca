// Package main provides the entry point for the apodex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for apodex.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apodex",
		Short: "NASA Astronomy Picture of the Day, explained simply",
		Long: `apodex fetches NASA's Astronomy Picture of the Day, asks an LLM to
rewrite the technical explanation for a general audience, and saves the
picture together with both versions of the text.

Two environment variables are required:
  NASA_KEY      NASA API key (https://api.nasa.gov)
  GROQ_API_KEY  Groq API key (https://console.groq.com)

Both may also be placed in a .env file in the working directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExplainCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
