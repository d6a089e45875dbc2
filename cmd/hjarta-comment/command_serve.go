package main

import (
	comment "github.com/0xalexb/hjarta-comment"
	"github.com/0xalexb/hjarta-comment/inspect"

	"github.com/spf13/cobra"
)

func newServeCommand(global *globalFlags) *cobra.Command {
	var (
		configFile string
		address    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compiled container over HTTP",
		Long: `Serve boots the comment bundle and exposes the compiled container as JSON
until the process receives SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := global.options(cmd.ErrOrStderr())
			if configFile != "" {
				opts = append(opts, comment.WithConfigFile(configFile))
			}

			opts = append(opts, comment.WithInspectListener("inspect", inspect.WithAddress(address)))

			app := comment.NewApp(opts...)

			err := app.Err()
			if err != nil {
				return newConfigError("failed to boot container", err)
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (.yml, .yaml, or .xml)")
	cmd.Flags().StringVarP(&address, "address", "a", inspect.DefaultAddress, "listen address")

	return cmd
}
