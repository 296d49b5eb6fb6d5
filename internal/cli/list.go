package cli

import (
	"github.com/spf13/cobra"

	"github.com/dropnote/dropnote/internal/catalog"
)

func newListCommand(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List terminal applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			installed := app.Prober.Installed()
			present := make(map[string]bool, len(installed))
			for _, d := range installed {
				present[d.ID] = true
			}

			if !all && len(installed) == 0 {
				cmd.Println("No supported terminal application is installed.")
				return nil
			}

			for _, d := range catalog.All() {
				switch {
				case present[d.ID]:
					cmd.Printf("  ✅ %-10s %-24s %s\n", d.DisplayName, d.ID, d.Method)
				case all:
					cmd.Printf("  ❌ %-10s %-24s %s\n", d.DisplayName, d.ID, d.Method)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include terminals that are not installed")
	return cmd
}
