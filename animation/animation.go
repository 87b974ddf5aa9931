package animation

import (
	"encoding/json"
	"fmt"
	"image"
)

const (
	defaultFPS         = 4
	defaultFrameWidth  = 32
	defaultFrameHeight = 32
)

// Animation is a named strip of frames cut from a sprite sheet. Frames are laid
// out left to right starting at (FrameX, FrameY).
type Animation struct {
	Name        string `json:"name"`
	FPS         int    `json:"fps"`
	FrameCount  int    `json:"frameCount"`
	FrameX      int    `json:"frameX"`
	FrameY      int    `json:"frameY"`
	FrameWidth  int    `json:"frameWidth"`
	FrameHeight int    `json:"frameHeight"`
	Reverse     bool   `json:"reverse"`
}

// New returns an Animation with default geometry.
func New() *Animation {
	return &Animation{
		FPS:         defaultFPS,
		FrameCount:  1,
		FrameWidth:  defaultFrameWidth,
		FrameHeight: defaultFrameHeight,
	}
}

// NewForCanvas builds the default animation offered for a canvas of the given
// size: four frames across the canvas width when it is at least 8 pixels wide,
// otherwise a single frame covering the canvas.
func NewForCanvas(name string, canvas image.Point) *Animation {
	a := New()
	a.Name = name
	a.FPS = 4
	a.FrameCount = 1
	if canvas.X >= 8 {
		a.FrameCount = 4
	}
	a.FrameX = 0
	a.FrameY = 0
	a.FrameWidth = canvas.X / a.FrameCount
	a.FrameHeight = canvas.Y
	return a
}

// Read overwrites the fields present in data. Absent keys keep their current values.
func (a *Animation) Read(data []byte) error {
	if a == nil {
		return fmt.Errorf("animation: read into nil animation")
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("animation: read: %w", err)
	}
	return nil
}

// Write encodes the animation as a JSON object.
func (a *Animation) Write() ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("animation: write nil animation")
	}
	return json.Marshal(a)
}

// Clone returns an independent copy.
func (a *Animation) Clone() *Animation {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// FrameRect returns the sheet rectangle of frame i.
func (a *Animation) FrameRect(i int) image.Rectangle {
	if a == nil {
		return image.Rectangle{}
	}
	x := a.FrameX + i*a.FrameWidth
	return image.Rect(x, a.FrameY, x+a.FrameWidth, a.FrameY+a.FrameHeight)
}

// Bounds returns the rectangle covering every frame of the strip.
func (a *Animation) Bounds() image.Rectangle {
	if a == nil || a.FrameCount <= 0 {
		return image.Rectangle{}
	}
	return a.FrameRect(0).Union(a.FrameRect(a.FrameCount - 1))
}

func (a *Animation) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%d frames @ %d fps, %dx%d at %d,%d)", a.Name, a.FrameCount, a.FPS, a.FrameWidth, a.FrameHeight, a.FrameX, a.FrameY)
}
