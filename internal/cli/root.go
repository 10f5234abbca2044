// Package cli provides the command-line interface for the YouTube URL tools.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/ytmcp-go/internal/config"
	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries state shared by every subcommand of one invocation.
type app struct {
	jsonOutput bool
	verbose    bool

	cfg config.Config
	reg *tools.Registry
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between runs.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "yt",
		Short: "Build canonical YouTube watch, thumbnail and normalized URLs",
		Long: `yt builds canonical YouTube URLs from video IDs and normalizes
loosely formatted YouTube links.

It runs the same tools the ytmcp MCP server exposes, so results are identical
to what an MCP client receives.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print the raw JSON envelope")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log tool dispatch to stderr")

	root.AddCommand(
		newWatchCmd(a),
		newThumbnailCmd(a),
		newNormalizeCmd(a),
		newToolsCmd(a),
		newCallCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.reg = tools.NewRegistry(logger, nil)
	if err := tools.RegisterAll(a.reg, tools.DependenciesFromConfig(cfg, logger)); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}
	return nil
}

// invoke runs a tool with input marshalled as its arguments and prints the envelope.
func (a *app) invoke(cmd *cobra.Command, name string, input any) error {
	args, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	return a.invokeRaw(cmd, name, args)
}

func (a *app) invokeRaw(cmd *cobra.Command, name string, args json.RawMessage) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := a.reg.Invoke(ctx, name, args)
	if err != nil {
		return err
	}
	return printEnvelope(cmd.OutOrStdout(), env, a.jsonOutput)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// run executes the CLI with explicit args and writers (for testing).
func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
