package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// palette is the editor's colour scheme. Button states are derived from a
// single base colour.
var palette = struct {
	panel      color.RGBA
	listBg     color.RGBA
	rowText    color.RGBA
	rowCurrent color.RGBA
	rowHover   color.RGBA
	rowPicked  color.RGBA
	button     color.RGBA
	input      color.RGBA
	overlay    color.RGBA
	dialog     color.RGBA
}{
	panel:      color.RGBA{36, 36, 40, 255},
	listBg:     color.RGBA{225, 225, 230, 255},
	rowText:    color.RGBA{20, 20, 24, 255},
	rowCurrent: color.RGBA{0, 70, 140, 255},
	rowHover:   color.RGBA{205, 225, 250, 255},
	rowPicked:  color.RGBA{170, 200, 245, 255},
	button:     color.RGBA{180, 180, 185, 255},
	input:      color.RGBA{245, 245, 245, 255},
	overlay:    color.RGBA{0, 0, 0, 160},
	dialog:     color.RGBA{220, 220, 220, 255},
}

var (
	panelColor     = palette.panel
	labelColor     = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	darkLabelColor = &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// shade brightens c by d, or darkens it when d is negative.
func shade(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(255, max(0, int(v)+d)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     solidNineSlice(base),
		Hover:    solidNineSlice(shade(base, 25)),
		Pressed:  solidNineSlice(shade(base, -30)),
		Disabled: solidNineSlice(shade(base, -90)),
	}
}

// newTextInput is the single-line input used by dialogs.
func newTextInput(fontFace *text.Face, width int, opts ...widget.TextInputOpt) *widget.TextInput {
	base := []widget.TextInputOpt{
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(palette.input),
			Disabled: solidNineSlice(shade(palette.input, -45)),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    palette.rowCurrent,
		}),
		widget.TextInputOpts.Face(fontFace),
	}
	return widget.NewTextInput(append(base, opts...)...)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          palette.rowText,
				Selected:            palette.rowCurrent,
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: palette.rowHover,
				SelectedBackground:  palette.rowPicked,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(palette.listBg),
				Mask: solidNineSlice(palette.listBg),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(palette.panel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    buttonImage(palette.button),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 60},
			},
		},
	}
}
