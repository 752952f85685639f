package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	xgxexception "github.com/xgx-io/xgx-exception"
	"github.com/xgx-io/xgx-exception/internal/fixture"
	"github.com/xgx-io/xgx-exception/interop"
	"github.com/xgx-io/xgx-exception/sink"
)

type renderOptions struct {
	flatten bool
	project bool
	root    bool
	log     bool
	toml    bool
}

func newRenderCommand(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <fixture.toml>",
		Short: "Build the chain described by a fixture and print it",
		Long: `Build the chain described by a TOML fixture and print it.

Without flags the complete chain is printed, one record per line, each cause
indented by one more '>'.`,
		Example: `  xgxchain render chain.toml
  xgxchain render --flatten chain.toml
  xgxchain render --project chain.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			e, err := f.Build()
			if err != nil {
				return err
			}
			defer e.Release()
			return a.render(cmd.OutOrStdout(), e, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "print one entry per record with its tag id")
	cmd.Flags().BoolVar(&opts.project, "project", false, "print the chain projected onto Go error types")
	cmd.Flags().BoolVar(&opts.root, "root", false, "print only the root cause")
	cmd.Flags().BoolVar(&opts.log, "log", false, "also report the chain through the configured logger")
	cmd.Flags().BoolVar(&opts.toml, "toml", false, "print the chain back as a TOML fixture")
	cmd.MarkFlagsMutuallyExclusive("flatten", "project", "root", "toml")
	return cmd
}

func (a *app) render(out io.Writer, e *xgxexception.Exception, opts renderOptions) error {
	p := a.painter()
	switch {
	case opts.flatten:
		for i, en := range interop.Flatten(e) {
			fmt.Fprintf(out, "%d %s %s\n", i, p.paint(tagStyle, en.Tag.Format()), en.Site().Function)
			fmt.Fprintf(out, "  %s\n", en.Message)
		}
	case opts.project:
		for err := interop.Project(e); err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(out, "%s %s\n", p.paint(mutedStyle, fmt.Sprintf("%T", err)), err.Error())
		}
	case opts.root:
		r := e.First()
		defer r.Release()
		fmt.Fprintln(out, p.chain(r.String()))
	case opts.toml:
		if err := fixture.FromException(e).Encode(out); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, p.chain(e.StringComplete()))
	}
	if opts.log {
		sink.Report(a.sink, e)
	}
	return nil
}
