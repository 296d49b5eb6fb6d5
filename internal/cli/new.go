package cli

import (
	"github.com/spf13/cobra"

	"github.com/dropnote/dropnote/internal/note"
)

func newNewCommand(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new [folder]",
		Short: "Create a Markdown note in a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveFolder(args)
			if err != nil {
				return err
			}
			creator := note.Creator{
				Extension: app.Cfg.Note.Extension,
				Template:  app.Cfg.Note.Template,
			}
			path, err := creator.Create(dir, name)
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "untitled", "note name (extension added automatically)")
	return cmd
}
