package cli

import (
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dropnote/dropnote/internal/config"
	"github.com/dropnote/dropnote/internal/history"
)

func newDoctorCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check launcher prerequisites on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := true

			// osascript and open back the scripted and generic launch
			// paths; without them only direct spawn works.
			for _, bin := range []struct{ name, why string }{
				{"osascript", "scripted automation and keystroke injection"},
				{"open", "generic application activation"},
				{"mdfind", "Spotlight bundle lookup"},
			} {
				if _, err := exec.LookPath(bin.name); err != nil {
					ok = false
					cmd.Printf("  ❌ %s not found in PATH (%s)\n", bin.name, bin.why)
				} else {
					cmd.Printf("  ✅ %s\n", bin.name)
				}
			}

			installed := app.Prober.Installed()
			if len(installed) == 0 {
				ok = false
				cmd.Println("  ❌ no supported terminal application installed")
			} else {
				for _, d := range installed {
					cmd.Printf("  ✅ %s (%s)\n", d.DisplayName, d.Method)
				}
			}

			if path, err := config.FindConfigFile(); err == nil {
				cmd.Printf("  ✅ config: %s\n", path)
			} else {
				cmd.Println("  ⚠️  no config file, using defaults")
			}

			if app.Cfg.History.Disabled {
				cmd.Println("  ⚠️  launch history disabled")
			} else {
				path := app.Cfg.History.Path
				if path == "" {
					path = history.DefaultPath()
				}
				cmd.Printf("  ✅ history: %s\n", path)
			}

			if !ok {
				return ErrSilent
			}
			return nil
		},
	}
}
