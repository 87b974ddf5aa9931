package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const leftPanelWidth = 260

// LeftPanelUI is the composed left-panel widget and its stateful helpers.
type LeftPanelUI struct {
	Container      *widget.Container
	AnimationPanel *AnimationPanel
	Playback       *PlaybackControls
	RenameOverlay  *widget.Container
}

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, actions panelActions) *LeftPanelUI {
	panel := NewAnimationPanel()

	container := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	addAnimationsSection(container, theme, fontFace, panel, actions)
	controls := addPlaybackSection(container, theme, fontFace, actions)

	dialog := newRenameDialog(theme, fontFace, actions.Rename)
	panel.openRenameDialog = dialog.Open

	return &LeftPanelUI{
		Container:      container,
		AnimationPanel: panel,
		Playback:       controls,
		RenameOverlay:  dialog.Overlay,
	}
}

// BuildEditorUI lays out the editor: the animation panel on the left and the
// preview area, drawn by the Editor itself, filling the rest.
func BuildEditorUI(actions panelActions) (*ebitenui.UI, *LeftPanelUI) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	leftPanel := buildLeftPanelUI(ui.PrimaryTheme, &fontFace, actions)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel.Container)
	root.AddChild(leftPanel.RenameOverlay)

	ui.Container = root
	return ui, leftPanel
}
