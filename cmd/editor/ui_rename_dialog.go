package main

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type renameDialog struct {
	Overlay *widget.Container
	Open    func(idx int, current string)
}

// newRenameDialog builds a modal name prompt. onRename reports whether the
// name was accepted; a refused name keeps the dialog open.
func newRenameDialog(theme *widget.Theme, fontFace *text.Face, onRename func(oldName, newName string) bool) *renameDialog {
	var oldName string

	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(palette.overlay)),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 150),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(palette.dialog)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	title := widget.NewLabel(widget.LabelOpts.Text("Rename animation", fontFace, darkLabelColor))
	status := widget.NewLabel(widget.LabelOpts.Text("", fontFace, darkLabelColor))

	closeDialog := func() {
		overlay.GetWidget().Visibility = widget.Visibility_Hide
		oldName = ""
	}
	submit := func(name string) {
		name = strings.TrimSpace(name)
		if oldName == "" || name == "" {
			closeDialog()
			return
		}
		if name != oldName && onRename != nil && !onRename(oldName, name) {
			status.Label = "name already in use"
			return
		}
		closeDialog()
	}

	nameInput := newTextInput(fontFace, 280,
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			submit(args.InputText)
		}),
	)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	buttonsRow.AddChild(newButton(theme, fontFace, "OK", func() { submit(nameInput.GetText()) }))
	buttonsRow.AddChild(newButton(theme, fontFace, "Cancel", closeDialog))

	dialog.AddChild(title)
	dialog.AddChild(nameInput)
	dialog.AddChild(status)
	dialog.AddChild(buttonsRow)
	overlay.AddChild(dialog)

	open := func(_ int, current string) {
		oldName = current
		status.Label = ""
		nameInput.SetText(current)
		nameInput.Focus(true)
		overlay.GetWidget().Visibility = widget.Visibility_Show
	}

	return &renameDialog{Overlay: overlay, Open: open}
}
