package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flavor_remover/internal/ingest"
	"flavor_remover/internal/report"
	"flavor_remover/internal/style"
)

func styleCmd() *cobra.Command {
	var promptFile string

	c := &cobra.Command{
		Use:   "style [domain]",
		Short: "Show domain style profiles, or build a rewrite prompt for a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			adv := style.NewAdvisor()

			if len(args) == 0 {
				if promptFile != "" {
					return fmt.Errorf("--prompt needs a domain")
				}
				for _, d := range style.Domains {
					if p, ok := adv.Profile(d); ok {
						report.Profile(out, p)
					}
				}
				return nil
			}

			d, ok := style.ParseDomain(args[0])
			if !ok {
				return fmt.Errorf("invalid domain %q (expected tech|essay|business|casual|general)", args[0])
			}
			p, ok := adv.Profile(d)
			if !ok {
				if promptFile != "" {
					return fmt.Errorf("domain %s has no style profile", d)
				}
				fmt.Fprintf(out, "%s has no style profile; heavy mode rewrites it like medium\n", d)
				return nil
			}

			if promptFile == "" {
				report.Profile(out, p)
				return nil
			}
			parsed, err := ingest.ParseFile(promptFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, adv.RewritePrompt(d, parsed.Text))
			return nil
		},
	}

	c.Flags().StringVar(&promptFile, "prompt", "", "Print a rewrite prompt for this document in the domain's style")
	return c
}
