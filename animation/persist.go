package animation

import (
	"encoding/json"
	"fmt"
)

const (
	keyAnimations   = "animations"
	keyCurrentIndex = "currentAnimationIndex"
	keyPlayback     = "currentAnimationPlayback"
	keyLegacyFPS    = "fps"
)

// legacyDocument is the single-animation format used before projects could
// hold more than one animation.
type legacyDocument struct {
	FPS         int     `json:"fps"`
	FrameCount  int     `json:"frameCount"`
	FrameX      int     `json:"frameX"`
	FrameY      int     `json:"frameY"`
	FrameWidth  int     `json:"frameWidth"`
	FrameHeight int     `json:"frameHeight"`
	Scale       float64 `json:"scale"`
	Loop        bool    `json:"loop"`
}

type document struct {
	Animations   []json.RawMessage `json:"animations"`
	CurrentIndex *int              `json:"currentAnimationIndex"`
	Playback     json.RawMessage   `json:"currentAnimationPlayback"`
}

// Read loads animations and playback settings from a JSON object. An object
// with a top-level "fps" key is read as a single legacy animation. The whole
// document is decoded and checked before the collection changes, so a failed
// Read leaves it untouched and emits nothing.
func (c *Collection) Read(data []byte) error {
	doc, err := c.decode(data)
	if err != nil {
		return err
	}
	doc.apply(c)
	return nil
}

// Replace is Reset followed by Read, except that the collection is only reset
// once data has decoded successfully.
func (c *Collection) Replace(data []byte) error {
	doc, err := NewCollection().decode(data)
	if err != nil {
		return err
	}
	c.Reset()
	doc.apply(c)
	return nil
}

// decoded is a fully validated document waiting to be applied.
type decoded struct {
	legacy     *legacyDocument
	animations []*Animation
	current    *int
	playback   json.RawMessage
}

// decode parses data without changing c. Names are checked against each
// other and against the animations already in c.
func (c *Collection) decode(data []byte) (*decoded, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("animation: read collection: %w", err)
	}
	if _, ok := obj[keyLegacyFPS]; ok {
		doc := legacyDocument{Scale: c.playback.Scale, Loop: c.playback.Loop}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("animation: read legacy animation: %w", err)
		}
		return &decoded{legacy: &doc}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("animation: read collection: %w", err)
	}
	out := &decoded{current: doc.CurrentIndex, playback: doc.Playback}
	seen := make(map[string]bool, len(doc.Animations))
	for i, raw := range doc.Animations {
		a := New()
		if err := a.Read(raw); err != nil {
			return nil, fmt.Errorf("animation: read animation %d: %w", i, err)
		}
		if seen[a.Name] || c.Contains(a.Name) {
			return nil, fmt.Errorf("animation: read animation %d: duplicate name %q", i, a.Name)
		}
		seen[a.Name] = true
		out.animations = append(out.animations, a)
	}
	if len(doc.Playback) > 0 {
		if err := NewPlayback().Read(doc.Playback); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *decoded) apply(c *Collection) {
	if d.legacy != nil {
		c.applyLegacy(d.legacy)
		return
	}
	for _, a := range d.animations {
		c.InsertAnimation(a, len(c.animations))
	}
	c.reconcileCreated()

	if len(d.playback) > 0 {
		// Already validated by decode.
		_ = c.playback.Read(d.playback)
	}
	if d.current != nil && *d.current >= 0 && *d.current < len(c.animations) {
		c.SetCurrentIndex(*d.current)
	}
}

func (c *Collection) applyLegacy(doc *legacyDocument) {
	a := New()
	name, created := c.nextFreeName()
	a.Name = name
	a.FPS = doc.FPS
	a.FrameCount = doc.FrameCount
	a.FrameX = doc.FrameX
	a.FrameY = doc.FrameY
	a.FrameWidth = doc.FrameWidth
	a.FrameHeight = doc.FrameHeight
	if c.InsertAnimation(a, 0) {
		c.created = created
	}

	c.playback.Scale = doc.Scale
	c.playback.Loop = doc.Loop
	c.playback.Playing = false
}

// Write stores the playback settings and current index in obj. The animation
// array is written by the owner of the collection, see WriteAnimations.
func (c *Collection) Write(obj map[string]json.RawMessage) error {
	if obj == nil {
		return fmt.Errorf("animation: write collection: nil object")
	}
	pb, err := c.playback.Write()
	if err != nil {
		return err
	}
	obj[keyPlayback] = pb

	idx, err := json.Marshal(c.current)
	if err != nil {
		return fmt.Errorf("animation: write current index: %w", err)
	}
	obj[keyCurrentIndex] = idx
	return nil
}

// WriteAnimations stores the animation array in obj.
func (c *Collection) WriteAnimations(obj map[string]json.RawMessage) error {
	if obj == nil {
		return fmt.Errorf("animation: write animations: nil object")
	}
	arr := make([]json.RawMessage, 0, len(c.animations))
	for _, a := range c.animations {
		raw, err := a.Write()
		if err != nil {
			return err
		}
		arr = append(arr, raw)
	}
	data, err := json.Marshal(arr)
	if err != nil {
		return fmt.Errorf("animation: write animations: %w", err)
	}
	obj[keyAnimations] = data
	return nil
}

// InsertJSON decodes one animation object and inserts it at index. A name
// that is empty or already used is replaced by the next free generated name.
func (c *Collection) InsertJSON(data []byte, index int) (string, error) {
	a := New()
	if err := a.Read(data); err != nil {
		return "", err
	}
	created := c.created
	if a.Name == "" || c.Contains(a.Name) {
		a.Name, created = c.nextFreeName()
	}
	if !c.InsertAnimation(a, index) {
		return "", fmt.Errorf("animation: insert %q at %d refused", a.Name, index)
	}
	c.created = created
	return a.Name, nil
}
