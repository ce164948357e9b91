package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flavor_remover/internal/config"
)

func configCmd(g *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the configuration file",
	}
	c.AddCommand(configInitCmd(), configShowCmd(g))
	return c
}

func configInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file (JSON, or YAML for .yaml/.yml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFiles[0]
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return c
}

func configShowCmd(g *globalOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file + env + defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected yaml|json)", format)
			}
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			raw, err := config.Marshal(*cfg, "effective."+format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}

	c.Flags().StringVar(&format, "format", "yaml", "Output format: yaml|json")
	return c
}
