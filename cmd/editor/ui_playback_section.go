package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PlaybackControls holds the buttons whose labels follow playback state.
type PlaybackControls struct {
	playBtn *widget.Button
	loopBtn *widget.Button
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if t := b.Text(); t != nil {
		t.Label = label
	}
}

// Sync updates the labels to match playing and loop.
func (pc *PlaybackControls) Sync(playing, loop bool) {
	if pc == nil {
		return
	}
	if playing {
		setButtonLabel(pc.playBtn, "Pause")
	} else {
		setButtonLabel(pc.playBtn, "Play")
	}
	if loop {
		setButtonLabel(pc.loopBtn, "Loop On")
	} else {
		setButtonLabel(pc.loopBtn, "Loop Off")
	}
}

func addPlaybackSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, actions panelActions) *PlaybackControls {
	pc := &PlaybackControls{}

	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Playback", fontFace, labelColor)))
	pc.playBtn = newButton(theme, fontFace, "Play", actions.TogglePlay)
	pc.loopBtn = newButton(theme, fontFace, "Loop On", actions.ToggleLoop)
	parent.AddChild(newButtonRow(pc.playBtn, pc.loopBtn))
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "Zoom -", func() { adjust(actions.AdjustScale, -0.5) }),
		newButton(theme, fontFace, "Zoom +", func() { adjust(actions.AdjustScale, 0.5) }),
	))

	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Frames", fontFace, labelColor)))
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "FPS -", func() { adjust(actions.AdjustFPS, -1) }),
		newButton(theme, fontFace, "FPS +", func() { adjust(actions.AdjustFPS, 1) }),
	))
	parent.AddChild(newButtonRow(
		newButton(theme, fontFace, "Count -", func() { adjust(actions.AdjustFrames, -1) }),
		newButton(theme, fontFace, "Count +", func() { adjust(actions.AdjustFrames, 1) }),
		newButton(theme, fontFace, "Reverse", actions.ToggleReverse),
	))
	parent.AddChild(newButtonRow(newButton(theme, fontFace, "Save", actions.Save)))
	return pc
}

func adjust[T int | float64](fn func(T), delta T) {
	if fn != nil {
		fn(delta)
	}
}
