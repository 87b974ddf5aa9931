package main

import (
	"fmt"
	"image"
	"strconv"

	"github.com/milk9111/spriteanim/project"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var width, height int
	var sheetPath string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			canvas := a.cfg.CanvasSize()
			if width > 0 {
				canvas.X = width
			}
			if height > 0 {
				canvas.Y = height
			}
			p := project.New(canvas)
			p.Sheet = sheetPath
			if err := p.SaveAs(a.projectPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%dx%d)\n", a.projectPath, canvas.X, canvas.Y)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "canvas width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height (default from config)")
	cmd.Flags().StringVar(&sheetPath, "sheet", "", "sprite sheet image, relative to the project")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the animations in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			current := p.Animations.CurrentIndex()
			for i, anim := range p.Animations.Animations() {
				marker := " "
				if i == current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %d. %s\n", marker, i, anim)
			}
			pb := p.Animations.Playback()
			fmt.Fprintf(out, "playback: scale=%g loop=%v playing=%v\n", pb.Scale, pb.Loop, pb.Playing)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append a generated animation sized for the canvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(p *project.Project) error {
				canvas := p.Canvas
				if canvas == (image.Point{}) {
					canvas = a.cfg.CanvasSize()
				}
				name, ok := p.Animations.CreateAnimation(canvas)
				if !ok {
					return refused("add")
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an animation by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(p *project.Project) error {
				if !p.Animations.RemoveAnimation(args[0]) {
					return refused("remove", args[0])
				}
				return nil
			})
		},
	}
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename an animation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(p *project.Project) error {
				if !p.Animations.Rename(args[0], args[1]) {
					return refused("rename", args[0], args[1])
				}
				return nil
			})
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select INDEX|NAME",
		Short: "Make an animation current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(p *project.Project) error {
				i, err := strconv.Atoi(args[0])
				if err != nil {
					i = p.Animations.IndexOf(args[0])
					if i == -1 {
						return refused("select", args[0])
					}
				}
				if !p.Animations.SetCurrentIndex(i) {
					return refused("select", i)
				}
				return nil
			})
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move an animation to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid FROM %q: %w", args[0], err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid TO %q: %w", args[1], err)
			}
			return a.edit(func(p *project.Project) error {
				if !p.Animations.Move(from, to) {
					return refused("move", from, to)
				}
				return nil
			})
		},
	}
}

func newDuplicateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate NAME",
		Short: "Copy an animation under a generated name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(p *project.Project) error {
				name, ok := p.Animations.Duplicate(args[0])
				if !ok {
					return refused("duplicate", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	}
}
