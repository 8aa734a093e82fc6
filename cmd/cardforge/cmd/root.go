// Package cmd implements the cardforge command line tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/cardforge/internal/config"
	"github.com/nfrund/cardforge/internal/logging"
	"github.com/nfrund/cardforge/internal/storage"
	"github.com/nfrund/cardforge/internal/tagline"
)

// Replaced in tests.
var (
	newStore     = func() storage.Store { return storage.NewOSStore() }
	newSuggester = func() tagline.Suggester { return tagline.NewSuggester(config.New()) }
)

// NewRootCmd builds the cardforge command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cardforge",
		Short: "CardForge business card tools",
		Long: `CardForge renders business cards from the command line.

Available commands:
  render     Render a card to a standalone HTML page
  themes     List the built-in card themes
  tagline    Suggest a tagline for a job title and company
  events     List the event topics the designer publishes

Use "cardforge [command] --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep stdout for command output.
			logging.NewTo(cmd.ErrOrStderr())
		},
	}

	root.AddCommand(
		newVersionCmd(),
		newThemesCmd(),
		newRenderCmd(),
		newTaglineCmd(),
		newEventsCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
