package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-exception/typetag"
)

func newTagCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Work with 128-bit type tags",
	}
	cmd.AddCommand(newTagParseCommand(a), newTagListCommand(a))
	return cmd
}

func newTagParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a tag and print its canonical form",
		Example: `  xgxchain tag parse 4b1d6f2e-9c3a-4758-8e21-5a7c0d93e614
  xgxchain tag parse "{4B1D6F2E9C3A47588E215A7C0D93E614}"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := typetag.Parse(args[0])
			if err != nil {
				return err
			}
			p := a.painter()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.paint(tagStyle, tag.Format()))
			if tag.Name != "" {
				fmt.Fprintln(out, p.paint(mutedStyle, "well-known: ")+tag.Name)
			}
			return nil
		},
	}
}

func newTagListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the well-known tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.painter()
			for _, t := range typetag.WellKnown() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", t.Name, p.paint(tagStyle, t.Format()))
			}
			return nil
		},
	}
}
