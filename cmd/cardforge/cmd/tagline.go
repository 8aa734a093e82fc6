package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newTaglineCmd() *cobra.Command {
	var job, company string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tagline",
		Short: "Suggest a tagline for a job title and company",
		Long: `Ask the configured text model for a business card tagline.

Without GEMINI_API_KEY (or API_KEY) a fixed fallback is printed and no
request is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if job == "" || company == "" {
				return errors.New("both --job and --company are required")
			}
			res := newSuggester().Suggest(cmd.Context(), job, company)
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "source: %s\n", res.Source)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&job, "job", "", "job title")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print where the suggestion came from")
	return cmd
}
