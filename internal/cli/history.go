package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCommand(app *App) *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded launch attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(app)
			if err != nil {
				return err
			}
			defer store.Close()

			if clear {
				if err := store.Clear(); err != nil {
					return err
				}
				cmd.Println("History cleared.")
				return nil
			}

			rows, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				cmd.Println("No launch attempts recorded.")
				return nil
			}
			for _, r := range rows {
				mark := "✅"
				if r.State == "failed" {
					mark = "❌"
				}
				cmd.Printf("%s %s  %-10s %-16s %s", mark, r.At.Format("2006-01-02 15:04:05"), r.Terminal, r.State, r.Dir)
				if r.FellBack {
					cmd.Printf("  (fell back)")
				}
				if r.Detail != "" {
					cmd.Printf("  %s", r.Detail)
				}
				cmd.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of attempts to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete all recorded attempts")
	return cmd
}
