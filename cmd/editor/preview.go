package main

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// previewArea is the screen region right of the left panel.
func (e *Editor) previewArea() image.Rectangle {
	return image.Rect(leftPanelWidth, 0, e.cfg.Window.Width, e.cfg.Window.Height)
}

func (e *Editor) drawPreview(screen *ebiten.Image) {
	area := e.previewArea()
	x, y := area.Min.X+12, area.Min.Y+8
	coll := e.animations()
	pb := coll.Playback()
	anim := pb.Animation()

	switch {
	case anim == nil:
		ebitenutil.DebugPrintAt(screen, "No animation selected. Press New to add one.", x, y)
	case e.sheet == nil:
		ebitenutil.DebugPrintAt(screen, "No sprite sheet loaded.", x, y)
	default:
		rect := anim.FrameRect(pb.CurrentFrame())
		if rect.Empty() || !rect.In(e.sheet.Bounds()) {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frame %v lies outside the sheet %v.", rect, e.sheet.Bounds()), x, y)
			break
		}
		frame := e.sheet.SubImage(rect).(*ebiten.Image)
		scale := pb.Scale
		if scale <= 0 {
			scale = 1
		}
		w, h := float64(rect.Dx())*scale, float64(rect.Dy())*scale
		center := area.Min.Add(area.Max).Div(2)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(center.X)-w/2, float64(center.Y)-h/2)
		screen.DrawImage(frame, op)
	}

	info := area.Max.Y - 80
	if anim != nil {
		ebitenutil.DebugPrintAt(screen, anim.String(), x, info)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frame %d/%d  Zoom %gx  Reverse %v", pb.CurrentFrame()+1, anim.FrameCount, pb.Scale, anim.Reverse), x, info+18)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Animation %d of %d", coll.CurrentIndex()+1, coll.Count()), x, info+36)
	if e.status != "" && time.Now().Before(e.statusUntil) {
		ebitenutil.DebugPrintAt(screen, e.status, x, info+54)
	}
}
