package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/milk9111/spriteanim/project"
	"github.com/milk9111/spriteanim/script"
	"github.com/milk9111/spriteanim/sheet"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var dir string
	var scale int
	cmd := &cobra.Command{
		Use:   "export [NAME]",
		Short: "Write the frames of an animation as WebP images",
		Long:  "Writes every frame of NAME (or the current animation) cut from the project's sprite sheet.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			anim := p.Animations.CurrentAnimation()
			if len(args) == 1 {
				anim = p.Animations.AnimationNamed(args[0])
			}
			if anim == nil {
				return errors.New("no animation to export")
			}
			if p.Sheet == "" {
				return errors.New("project has no sprite sheet")
			}
			img, err := sheet.Load(p.SheetPath())
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			if scale <= 0 {
				scale = a.cfg.Export.Scale
			}
			paths, err := sheet.ExportFrames(dir, img, anim, scale)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().IntVar(&scale, "scale", 0, "integer upscale factor (default from config)")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a tengo script against the project's animations",
		Long: `Runs a tengo script with the global "anim" bound to the project's animations.

Available functions: count, current, names, index_of, get, select, create,
remove, take, rename, move, duplicate, set_fps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			canvas := p.Canvas
			if canvas == (image.Point{}) {
				canvas = a.cfg.CanvasSize()
			}
			events, err := script.RunFile(cmd.Context(), args[0], p.Animations, canvas)
			if err != nil {
				return err
			}
			for _, evt := range events {
				fmt.Fprintln(cmd.OutOrStdout(), evt)
			}
			if dryRun {
				return nil
			}
			return p.Save()
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resulting events without saving")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the animation list whenever the project file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			w, err := project.NewWatcher(a.projectPath)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watching %s\n", a.projectPath)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case _, ok := <-w.Events:
					if !ok {
						return nil
					}
					if err := p.Reload(); err != nil {
						slog.Warn("reload failed", "path", a.projectPath, "error", err)
						continue
					}
					fmt.Fprintf(out, "%d animations: %v (current %d)\n", p.Animations.Count(), p.Animations.Names(), p.Animations.CurrentIndex())
				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					slog.Warn("watch error", "error", err)
				}
			}
		},
	}
}
