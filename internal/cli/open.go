package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dropnote/dropnote/internal/catalog"
	"github.com/dropnote/dropnote/internal/history"
	"github.com/dropnote/dropnote/internal/launch"
)

func newOpenCommand(app *App) *cobra.Command {
	var (
		terminalID string
		pick       bool
	)

	cmd := &cobra.Command{
		Use:   "open [folder]",
		Short: "Open a terminal window at a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveFolder(args)
			if err != nil {
				return err
			}

			installed := app.Prober.Installed()
			if len(installed) == 0 {
				return fmt.Errorf("no supported terminal application is installed")
			}

			term, err := selectTerminal(app, installed, terminalID, pick)
			if err != nil {
				return err
			}

			opts := []launch.Option{
				launch.WithLogger(app.Log),
				launch.WithFallbackTiming(app.Cfg.ActivationTimeout(), app.Cfg.KeystrokeDelay()),
			}
			if !app.Cfg.History.Disabled {
				store, err := openHistory(app)
				if err != nil {
					app.Log.Warn("history unavailable", zap.Error(err))
				} else {
					defer store.Close()
					opts = append(opts, launch.WithRecorder(store))
				}
			}

			dispatcher := launch.NewDispatcher(app.Index, opts...)
			out := dispatcher.Open(cmd.Context(), term, dir)
			if !out.OK() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open %s.\n", term.DisplayName)
				return ErrSilent
			}
			if out.State == launch.ActivationOnly {
				cmd.Printf("✅ Opened %s (directory change is best-effort)\n", term.DisplayName)
			} else {
				cmd.Printf("✅ Opened %s at %s\n", term.DisplayName, dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&terminalID, "terminal", "t", "", "terminal bundle identifier (see 'dropnote list')")
	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "pick the terminal interactively")
	return cmd
}

func resolveFolder(args []string) (string, error) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("target folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a folder", abs)
	}
	return abs, nil
}

// selectTerminal resolves the descriptor to launch: explicit flag, then
// interactive pick, then the configured preference, then the first
// installed catalog entry.
func selectTerminal(app *App, installed []catalog.Descriptor, terminalID string, pick bool) (catalog.Descriptor, error) {
	if terminalID != "" {
		d, ok := catalog.Lookup(terminalID)
		if !ok {
			return catalog.Descriptor{}, fmt.Errorf("unknown terminal %q (see 'dropnote list')", terminalID)
		}
		return d, nil
	}
	if pick {
		return pickTerminal(installed)
	}
	if app.Cfg.Terminal != "" {
		if d, ok := catalog.Lookup(app.Cfg.Terminal); ok {
			for _, inst := range installed {
				if inst.ID == d.ID {
					return d, nil
				}
			}
		}
	}
	return installed[0], nil
}

func openHistory(app *App) (*history.Store, error) {
	path := app.Cfg.History.Path
	if path == "" {
		path = history.DefaultPath()
	}
	return history.Open(path)
}
