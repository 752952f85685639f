// Package cli contains the xgxchain command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-exception/internal/config"
	"github.com/xgx-io/xgx-exception/sink"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app holds flag values and the state PersistentPreRunE prepares for
// subcommands.
type app struct {
	configDir  string
	configFile string
	noColor    bool

	cfg  *config.Config
	sink sink.Sink
}

func (a *app) painter() painter {
	return painter{color: !a.noColor && a.cfg != nil && a.cfg.Render.Color}
}

// NewRootCommand builds a fresh command tree. Each call is independent, so
// tests can run several in parallel.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "xgxchain",
		Short: "Inspect type tags and exception chains",
		Long: titleStyle.Render("xgxchain") + mutedStyle.Render(" - inspect type tags and exception chains") + `

Parse and list 128-bit type tags, and render exception chains described in
TOML fixtures the way the library renders them at runtime.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding xgxchain.yaml")
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (overrides --config-dir)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(newTagCommand(a))
	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newVersionCommand())
	return root
}

func (a *app) setup(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configFile != "" {
		cfg, err = config.LoadFile(a.configFile)
	} else {
		cfg, err = config.Load(a.configDir)
	}
	if err != nil {
		return err
	}
	s, err := newSink(cfg.Log, logOut)
	if err != nil {
		return err
	}
	a.cfg, a.sink = cfg, s
	return nil
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the command tree through fang.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		NewRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}
