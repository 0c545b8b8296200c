package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/gridfile"
)

var columnsJSON bool

func init() {
	columnsCmd.Flags().BoolVar(&columnsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(columnsCmd)
}

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the columns of a grid and their validators",
	Long: `List the columns of a grid document with their type and the validators
configured on them, in the order they run.`,
	Example: `  # Show columns
  gridcheck columns users.yaml

  # JSON output
  gridcheck columns users.yaml --json

  See Also: gridcheck validate`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runColumns(c.Context(), args[0], columnsJSON, c.OutOrStdout())
	},
}

type columnInfoJSON struct {
	Index      int                 `json:"index"`
	BindTo     string              `json:"bindTo"`
	Title      string              `json:"title,omitempty"`
	Type       string              `json:"type"`
	Validators []validatorInfoJSON `json:"validators"`
}

type validatorInfoJSON struct {
	Name            string `json:"name"`
	IgnoreViolation bool   `json:"ignoreViolation"`
}

func runColumns(ctx context.Context, path string, jsonOut bool, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := gridfile.Load(ctx, path, nil)
	if err != nil {
		return errors.NewUserError(err, "Check the grid document; see: gridcheck validate --help")
	}

	if jsonOut {
		return outputColumnsJSON(w, g)
	}
	return outputColumnsTabular(w, g)
}

func outputColumnsJSON(w io.Writer, g *gridfile.Grid) error {
	out := make([]columnInfoJSON, 0, len(g.Columns))
	for _, c := range g.Columns {
		info := columnInfoJSON{
			Index:      c.Index,
			BindTo:     c.BindTo,
			Title:      c.Title,
			Type:       string(c.Type),
			Validators: make([]validatorInfoJSON, 0, len(c.Validators)),
		}
		for _, v := range c.Validators {
			info.Validators = append(info.Validators, validatorInfoJSON{
				Name:            v.Name,
				IgnoreViolation: v.IgnoreViolation,
			})
		}
		out = append(out, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding columns")
}

func outputColumnsTabular(w io.Writer, g *gridfile.Grid) error {
	if len(g.Columns) == 0 {
		fmt.Fprintln(w, "No columns defined.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tBIND TO\tTITLE\tTYPE\tVALIDATORS")
	for _, c := range g.Columns {
		names := make([]string, 0, len(c.Validators))
		for _, v := range c.Validators {
			names = append(names, validatorLabel(v))
		}
		validators := strings.Join(names, ", ")
		if validators == "" {
			validators = "-"
		}
		title := c.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.Index, c.BindTo, title, c.Type, validators)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "writing columns")
	}

	fmt.Fprintf(w, "\n%d row(s)\n", len(g.Rows))
	return nil
}
