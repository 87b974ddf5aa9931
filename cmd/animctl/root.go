package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/milk9111/spriteanim/animation"
	"github.com/milk9111/spriteanim/config"
	"github.com/milk9111/spriteanim/project"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand.
type app struct {
	cfg         config.Config
	projectPath string
	verbose     bool
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "animctl",
		Short: "Inspect and edit the animations of a sprite project",
		Long: `animctl edits the named frame animations stored in a sprite project file.

Every editing command loads the project, applies one change and saves it back,
so it can be scripted from a shell or driven by a tengo script with "run".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cfg, err := config.Load(config.Path())
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&a.projectPath, "project", "p", "project.json", "project file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every collection change")

	cmd.AddCommand(newNewCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newRemoveCmd(a))
	cmd.AddCommand(newRenameCmd(a))
	cmd.AddCommand(newSelectCmd(a))
	cmd.AddCommand(newMoveCmd(a))
	cmd.AddCommand(newDuplicateCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newWatchCmd(a))

	return cmd
}

// load opens the project and, in verbose mode, logs collection events.
func (a *app) load() (*project.Project, error) {
	p, err := project.Load(a.projectPath)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		p.Animations.Subscribe(func(c *animation.Collection, evt animation.Event) {
			slog.Debug("collection event", "event", evt.String(), "count", c.Count(), "current", c.CurrentIndex())
		})
	}
	return p, nil
}

// edit loads the project, applies fn and saves the result. fn reports refused
// changes as errors so the process exits non-zero.
func (a *app) edit(fn func(p *project.Project) error) error {
	p, err := a.load()
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return p.Save()
}

func refused(op string, args ...any) error {
	return fmt.Errorf("%s refused: %v", op, args)
}
