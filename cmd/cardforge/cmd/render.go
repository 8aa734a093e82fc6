package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/cardforge/internal/card"
	"github.com/nfrund/cardforge/internal/modules/designer/view"
	"github.com/nfrund/cardforge/internal/render"
	gview "github.com/nfrund/cardforge/internal/view"
)

const sideBoth = "both"

type renderOptions struct {
	theme  string
	side   string
	out    string
	fields []string
	logo   string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a card to a standalone HTML page",
		Long: `Render the sample card, with any fields overridden, to an HTML page.

Examples:
  cardforge render --out card.html
  cardforge render --theme paper --side back --field fullName="Sam Lee"
  cardforge render --logo ./logo.png --out - > card.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", string(render.DefaultTheme), "card theme id")
	cmd.Flags().StringVar(&opts.side, "side", sideBoth, "side to render: front, back or both")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "card.html", `output file, "-" for stdout`)
	cmd.Flags().StringArrayVarP(&opts.fields, "field", "f", nil, "field override as key=value, repeatable")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "path to a logo image")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	ctx := cmd.Context()
	store := newStore()

	theme, err := render.Lookup(render.ThemeID(opts.theme))
	if err != nil {
		return err
	}

	d := card.Default()
	for _, kv := range opts.fields {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid field %q: expected key=value", kv)
		}
		f, err := card.ParseField(key)
		if err != nil {
			return err
		}
		if err := d.Set(f, value); err != nil {
			return err
		}
	}

	if opts.logo != "" {
		rc, err := store.Open(ctx, opts.logo)
		if err != nil {
			return err
		}
		uri, err := card.DecodeLogo(rc, card.DefaultLogoMaxBytes)
		rc.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.logo, err)
		}
		if err := d.SetLogo(uri); err != nil {
			return err
		}
	}

	var faces []render.Face
	if opts.side == sideBoth {
		faces = render.RenderBoth(d, theme)
	} else {
		side, err := render.ParseSide(opts.side)
		if err != nil {
			return err
		}
		faces = []render.Face{render.Render(d, side, theme)}
	}

	var buf bytes.Buffer
	if err := view.Sheet(gview.Title(d.FullName), faces, false).Render(&buf); err != nil {
		return fmt.Errorf("failed to render card: %w", err)
	}

	if opts.out == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	n, err := store.Save(ctx, opts.out, &buf)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", n, opts.out)
	return nil
}
