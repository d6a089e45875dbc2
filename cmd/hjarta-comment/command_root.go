package main

import (
	"io"

	comment "github.com/0xalexb/hjarta-comment"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

func (g *globalFlags) options(stderr io.Writer) []comment.Option {
	return []comment.Option{
		comment.WithLogLevel(g.logLevel),
		comment.WithLogFormat(g.logFormat),
		comment.WithLogOutput(stderr),
	}
}

// newRootCommand creates the root cobra command with all subcommands.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "hjarta-comment",
		Short: "Boot the comment bundle into a dependency-injection container",
		Long: `hjarta-comment reads the elcodi_comment configuration section, loads the
bundle's service definitions, and compiles them into a container that can be
dumped or served over HTTP for inspection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "json", "log format (json, text)")

	cmd.AddCommand(
		newDumpCommand(&flags),
		newServeCommand(&flags),
		newVersionCommand(),
	)

	return cmd
}
