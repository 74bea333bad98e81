// Package main provides the owfree CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joss/owfree/internal/config"
)

var (
	version = "0.1.0"
	pretty  = true
)

func main() {
	// Disable pretty output when piped
	pretty = term.IsTerminal(int(os.Stdout.Fd()))

	rootCmd := &cobra.Command{
		Use:   "owfree",
		Short: "Keep Open WebUI's allow-list limited to free OpenRouter models",
		Long: `owfree: free-model allow-list writer for Open WebUI.

Fetches the OpenRouter model catalog, classifies each model as free or
paid, and writes the free IDs into the webui.db config row at
openai.api_configs[<index>].model_ids. Every other byte of the stored
configuration is preserved.

Dry-run by default; nothing is written without --apply.

Examples:
  export OPENROUTER_API_KEY="sk-or-v1-..."
  owfree sync --db /opt/open-webui/backend/data/webui.db --verbose
  owfree sync --db /opt/open-webui/backend/data/webui.db --apply --backup
  owfree show --db /opt/open-webui/backend/data/webui.db`,
	}

	rootCmd.AddCommand(
		syncCmd(),
		showCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("owfree %s\n", version)
		},
	}
}

// fatal prints the error and exits non-zero. Error classes stay
// distinguishable by their message text (api key, fetch, locate, store).
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// storeFlags registers the flags shared by sync and show.
func storeFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.DBPath, "db", config.DefaultDBPath, "path to webui.db")
	cmd.Flags().IntVar(&cfg.ConnectionIndex, "index", 0, "openai.api_configs entry to target")
}
