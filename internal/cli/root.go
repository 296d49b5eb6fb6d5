package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dropnote/dropnote/internal/config"
	"github.com/dropnote/dropnote/internal/logging"
	"github.com/dropnote/dropnote/internal/probe"
)

const version = "0.3.0"

// ErrSilent signals a non-zero exit after the command already printed its
// own user-facing message.
var ErrSilent = errors.New("silent")

// App holds the wiring shared by all commands, built once in the root's
// PersistentPreRunE.
type App struct {
	Cfg    *config.Config
	Log    *zap.Logger
	Index  probe.AppIndex
	Prober *probe.Prober
}

// NewRootCmd wires the cobra root command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	app := &App{}

	root := &cobra.Command{
		Use:           "dropnote",
		Short:         "Create Markdown notes and open terminals at a folder",
		Long:          "dropnote is the command-line companion for a Finder workflow:\ncreate a Markdown note in a folder, or open a terminal window there,\nwith multi-tier launch fallback across installed terminal apps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			app.Cfg = cfg
			app.Log = logging.New(cfg.LogLevel, verbose)
			app.Index = probe.DarwinIndex{}
			app.Prober = probe.New(app.Index)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose console logging")

	root.AddCommand(newOpenCommand(app))
	root.AddCommand(newListCommand(app))
	root.AddCommand(newNewCommand(app))
	root.AddCommand(newHistoryCommand(app))
	root.AddCommand(newDoctorCommand(app))
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dropnote version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dropnote version %s\n", version)
		},
	}
}
