package animation

import (
	"encoding/json"
	"fmt"
	"math"
)

// DefaultTicksPerSecond matches ebiten's default update rate.
const DefaultTicksPerSecond = 60

// Playback advances through the frames of one bound Animation. Rebinding keeps
// scale, loop and playing state; only the frame cursor starts over.
type Playback struct {
	Scale   float64
	Loop    bool
	Playing bool

	// TicksPerSecond is how often Update is called. Zero means DefaultTicksPerSecond.
	TicksPerSecond int

	anim    *Animation
	current int
	tick    int
}

// playbackState is the persisted subset of Playback.
type playbackState struct {
	Scale   float64 `json:"scale"`
	Loop    bool    `json:"loop"`
	Playing bool    `json:"playing"`
}

// NewPlayback returns a cursor with default settings and nothing bound.
func NewPlayback() *Playback {
	p := &Playback{}
	p.Reset()
	return p
}

// Animation returns the bound animation, or nil.
func (p *Playback) Animation() *Animation {
	if p == nil {
		return nil
	}
	return p.anim
}

// SetAnimation retargets the cursor. Binding the same animation again is a no-op.
func (p *Playback) SetAnimation(a *Animation) {
	if p == nil || p.anim == a {
		return
	}
	p.anim = a
	p.current = p.firstFrame()
	p.tick = 0
	if a == nil {
		p.Playing = false
	}
}

// CurrentFrame returns the index of the frame being shown.
func (p *Playback) CurrentFrame() int {
	if p == nil {
		return 0
	}
	return p.current
}

// SetCurrentFrame jumps to frame i, clamped to the bound animation.
func (p *Playback) SetCurrentFrame(i int) {
	if p == nil || p.anim == nil || p.anim.FrameCount <= 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= p.anim.FrameCount {
		i = p.anim.FrameCount - 1
	}
	p.current = i
	p.tick = 0
}

// Update advances the cursor by one tick.
func (p *Playback) Update() {
	if p == nil || !p.Playing || p.anim == nil || p.anim.FrameCount <= 1 || p.anim.FPS <= 0 {
		return
	}
	tps := p.TicksPerSecond
	if tps <= 0 {
		tps = DefaultTicksPerSecond
	}
	ticksPerFrame := int(math.Max(1, math.Round(float64(tps)/float64(p.anim.FPS))))

	p.tick++
	if p.tick < ticksPerFrame {
		return
	}
	p.tick = 0

	step := 1
	if p.anim.Reverse {
		step = -1
	}
	next := p.current + step
	if next >= 0 && next < p.anim.FrameCount {
		p.current = next
		return
	}
	if p.Loop {
		p.current = p.firstFrame()
		return
	}
	p.Playing = false
}

// Reset restores the default settings and unbinds the animation.
func (p *Playback) Reset() {
	if p == nil {
		return
	}
	p.anim = nil
	p.Scale = 1
	p.Loop = true
	p.Playing = false
	p.current = 0
	p.tick = 0
}

// Read overwrites the persisted settings present in data.
func (p *Playback) Read(data []byte) error {
	if p == nil {
		return fmt.Errorf("playback: read into nil playback")
	}
	st := playbackState{Scale: p.Scale, Loop: p.Loop, Playing: p.Playing}
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("playback: read: %w", err)
	}
	p.Scale = st.Scale
	p.Loop = st.Loop
	p.Playing = st.Playing
	return nil
}

// Write encodes the persisted settings.
func (p *Playback) Write() ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("playback: write nil playback")
	}
	return json.Marshal(playbackState{Scale: p.Scale, Loop: p.Loop, Playing: p.Playing})
}

func (p *Playback) firstFrame() int {
	if p.anim != nil && p.anim.Reverse && p.anim.FrameCount > 0 {
		return p.anim.FrameCount - 1
	}
	return 0
}
