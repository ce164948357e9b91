package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"flavor_remover/internal/buildinfo"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// global flags shared by every command.
type globalOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	p := &processOptions{}

	cmd := &cobra.Command{
		Use:          "afr [file|dir|-]",
		Short:        "afr: make machine-written Chinese prose read like a person wrote it",
		Args:         cobra.MaximumNArgs(1),
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runProcess(cmd, g, p, args[0])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (JSON or YAML; default .ai-flavor-remover.{json,yaml,yml} in the working directory)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging with source locations")

	f := cmd.Flags()
	f.StringVarP(&p.mode, "mode", "m", "", "Rewrite mode: light|medium|heavy (default from config, else medium)")
	f.StringVarP(&p.domain, "domain", "d", "", "Content domain: tech|essay|business|casual|general")
	f.StringVarP(&p.output, "output", "o", "", "Output file, or output directory in batch mode")
	f.BoolVar(&p.detectOnly, "detect-only", false, "Only report flavor markers; do not rewrite")
	f.BoolVarP(&p.verbose, "verbose", "v", false, "Print a detection summary alongside the rewrite")
	f.BoolVarP(&p.batch, "batch", "b", false, "Batch mode (implied when the input is a directory)")
	f.StringVar(&p.format, "format", "pretty", "Report format: pretty|json")
	f.StringVar(&p.reportPath, "report", "", "Write the JSON detection report to this file (a directory in batch mode)")
	f.BoolVar(&p.saveReport, "save-report", false, "Write JSON detection reports under the data directory")
	f.IntVarP(&p.workers, "workers", "j", 0, "Parallel documents in batch mode (default from config, else one per CPU)")

	cmd.AddCommand(
		historyCmd(g),
		configCmd(g),
		styleCmd(),
		versionCmd(),
	)
	return cmd
}
