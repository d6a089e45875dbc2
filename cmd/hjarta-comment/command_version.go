package main

import (
	"fmt"

	comment "github.com/0xalexb/hjarta-comment"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hjarta-comment %s (bundle %s, compiled %s)\n",
				comment.Version, comment.BundleVersion, comment.CompiledAt)

			return err
		},
	}
}
