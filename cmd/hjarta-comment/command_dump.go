package main

import (
	"errors"
	"fmt"
	"slices"

	comment "github.com/0xalexb/hjarta-comment"
	yamlparser "github.com/0xalexb/hjarta-comment/config/parser/yaml"
	"github.com/0xalexb/hjarta-comment/container"
	"github.com/0xalexb/hjarta-comment/inspect"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// Output formats accepted by dump.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const sectionAll = "all"

var (
	errUnknownOutput  = errors.New("unknown output format")
	errUnknownSection = errors.New("unknown section")
)

type dumpFlags struct {
	config  string
	format  string
	section string
}

func newDumpCommand(global *globalFlags) *cobra.Command {
	var flags dumpFlags

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the compiled container",
		Long: `Dump boots the comment bundle and prints the compiled container. Without
--config only the defaults apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "config file (.yml, .yaml, or .xml)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", FormatYAML, "output format (yaml, json)")
	cmd.Flags().StringVarP(&flags.section, "section", "s", sectionAll, "section to print (all, parameters, services, aliases, overrides, mappings)")

	return cmd
}

func runDump(cmd *cobra.Command, global *globalFlags, flags dumpFlags) error {
	if flags.format != FormatYAML && flags.format != FormatJSON {
		return fmt.Errorf("%w: %q", errUnknownOutput, flags.format)
	}

	if flags.section != sectionAll && !slices.Contains(inspect.Sections, flags.section) {
		return fmt.Errorf("%w: %q", errUnknownSection, flags.section)
	}

	compiled, err := boot(global, cmd, flags.config)
	if err != nil {
		return err
	}

	body := snapshot(compiled, flags.section)

	var out []byte

	switch flags.format {
	case FormatJSON:
		out, err = json.MarshalIndent(body, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yamlparser.Marshal(body)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", flags.format, err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func boot(global *globalFlags, cmd *cobra.Command, configFile string) (*container.Container, error) {
	opts := global.options(cmd.ErrOrStderr())
	if configFile != "" {
		opts = append(opts, comment.WithConfigFile(configFile))
	}

	app := comment.NewApp(opts...)

	err := app.Err()
	if err != nil {
		return nil, newConfigError("failed to boot container", err)
	}

	return app.Container(), nil
}

func snapshot(compiled *container.Container, section string) any {
	if section != sectionAll {
		body, _ := inspect.Snapshot(compiled, section)

		return body
	}

	all := make(map[string]any, len(inspect.Sections))

	for _, name := range inspect.Sections {
		all[name], _ = inspect.Snapshot(compiled, name)
	}

	return all
}
