package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"flavor_remover/internal/store"
)

func historyCmd(g *globalOptions) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "List recent runs from the local history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.History.Disabled {
				fmt.Fprintln(out, "history is disabled")
				return nil
			}

			path, err := historyPath(cfg)
			if err != nil {
				return err
			}
			h, err := store.Open(path)
			if err != nil {
				return err
			}
			defer h.Close()

			runs, err := h.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs recorded yet")
				return nil
			}
			for _, r := range runs {
				kind := "rewrite"
				if r.DetectOnly {
					kind = "detect"
				}
				fmt.Fprintf(out, "%s  %-14s %-7s %-6s %-8s %d doc(s), %d failed\n",
					shortID(r.ID), humanize.Time(r.StartedAt), kind, r.Mode, r.Domain, r.Documents, r.Failures)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	return c
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
