package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// panelActions are the editor operations reachable from the left panel.
type panelActions struct {
	Select    func(index int)
	New       func()
	Delete    func()
	MoveUp    func()
	MoveDown  func()
	Duplicate func()
	Rename    func(oldName, newName string) bool
	Copy      func()
	Paste     func()

	TogglePlay    func()
	ToggleLoop    func()
	ToggleReverse func()
	AdjustFPS     func(delta int)
	AdjustFrames  func(delta int)
	AdjustScale   func(delta float64)
	Save          func()
}

func newButton(theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newButtonRow(buttons ...*widget.Button) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	for _, b := range buttons {
		row.AddChild(b)
	}
	return row
}

func addAnimationsSection(
	parent *widget.Container,
	theme *widget.Theme,
	fontFace *text.Face,
	panel *AnimationPanel,
	actions panelActions,
) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Animations", fontFace, labelColor)))

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(panel.label),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if panel.suppressEvents || actions.Select == nil {
				return
			}
			entry, ok := args.Entry.(*AnimationEntry)
			if !ok {
				return
			}
			for i, e := range panel.entries {
				if e == entry {
					actions.Select(i)
					return
				}
			}
		}),
	)
	parent.AddChild(list)
	panel.list = list

	panel.countLabel = widget.NewLabel(widget.LabelOpts.Text("0 animations", fontFace, labelColor))
	parent.AddChild(panel.countLabel)

	renameBtn := newButton(theme, fontFace, "Rename", func() {
		entry, ok := list.SelectedEntry().(*AnimationEntry)
		if !ok || panel.openRenameDialog == nil {
			return
		}
		panel.openRenameDialog(-1, entry.Anim.Name)
	})
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "New", actions.New),
		newButton(theme, fontFace, "Delete", actions.Delete),
		renameBtn,
	))
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "Up", actions.MoveUp),
		newButton(theme, fontFace, "Down", actions.MoveDown),
		newButton(theme, fontFace, "Duplicate", actions.Duplicate),
	))
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "Copy", actions.Copy),
		newButton(theme, fontFace, "Paste", actions.Paste),
	))
}
