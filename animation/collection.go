package animation

import (
	"image"
	"log/slog"
	"slices"
)

var pkgLogger *slog.Logger

// SetLogger replaces the logger used for warnings. nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default().With("component", "animation")
}

// Collection is the ordered set of animations defined for a canvas, together
// with the current selection and the playback cursor bound to it.
//
// Refused operations log a warning and leave the collection unchanged. The
// collection is not safe for concurrent use.
type Collection struct {
	animations []*Animation
	current    int
	playback   *Playback
	created    int
	events     emitter
}

// NewCollection returns an empty collection with nothing selected.
func NewCollection() *Collection {
	return &Collection{
		current:  -1,
		playback: NewPlayback(),
	}
}

// Subscribe registers h for every event. The returned func removes it.
func (c *Collection) Subscribe(h Handler) (unsubscribe func()) {
	id := c.events.subscribe(h)
	return func() { c.events.unsubscribe(id) }
}

func (c *Collection) emit(kind EventKind, index int) {
	c.events.emit(c, Event{Kind: kind, Index: index})
}

// Count returns the number of animations.
func (c *Collection) Count() int {
	return len(c.animations)
}

// CurrentIndex returns the selected position, or -1.
func (c *Collection) CurrentIndex() int {
	return c.current
}

// CurrentAnimation returns the selected animation, or nil.
func (c *Collection) CurrentAnimation() *Animation {
	if c.current < 0 || c.current >= len(c.animations) {
		return nil
	}
	return c.animations[c.current]
}

// Playback returns the cursor bound to the current animation. It lives as
// long as the collection.
func (c *Collection) Playback() *Playback {
	return c.playback
}

// SetCurrentIndex selects index i. -1 clears the selection; any other value
// outside [0, Count()-1] is refused.
func (c *Collection) SetCurrentIndex(i int) bool {
	if i != -1 && !c.validIndexOrWarn(i) {
		return false
	}
	if i == c.current {
		return true
	}
	c.current = i
	c.playback.SetAnimation(c.CurrentAnimation())
	c.emit(EventCurrentIndexChanged, i)
	return true
}

// Contains reports whether an animation named name exists.
func (c *Collection) Contains(name string) bool {
	return c.IndexOf(name) != -1
}

// IndexOf returns the position of the animation named name, or -1.
func (c *Collection) IndexOf(name string) int {
	return slices.IndexFunc(c.animations, func(a *Animation) bool { return a.Name == name })
}

// AnimationAt returns the animation at index, or nil when index is invalid.
func (c *Collection) AnimationAt(index int) *Animation {
	if !c.validIndexOrWarn(index) {
		return nil
	}
	return c.animations[index]
}

// AnimationNamed returns the animation called name, or nil.
func (c *Collection) AnimationNamed(name string) *Animation {
	i := c.IndexOf(name)
	if i == -1 {
		logger().Warn("animation doesn't exist", "name", name)
		return nil
	}
	return c.animations[i]
}

// Animations returns the animations in order. The slice is a copy; the
// animations are not.
func (c *Collection) Animations() []*Animation {
	return slices.Clone(c.animations)
}

// Names returns the animation names in order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.animations))
	for i, a := range c.animations {
		names[i] = a.Name
	}
	return names
}

// CreateAnimation appends a new animation sized for canvas under the next
// generated name and returns that name. It returns "" and false if the
// generated name is already used.
func (c *Collection) CreateAnimation(canvas image.Point) (string, bool) {
	name := c.PeekNextName()
	if c.Contains(name) {
		logger().Warn("animation already exists", "name", name)
		return "", false
	}

	logger().Debug("adding new animation", "name", name)

	done := c.trackCurrent()
	c.created++
	c.insertAt(NewForCanvas(name, canvas), len(c.animations))
	done()
	return name, true
}

// InsertAnimation takes ownership of a and inserts it at index, which may be
// Count() to append. a must not already be in the collection and its name
// must be unused.
func (c *Collection) InsertAnimation(a *Animation, index int) bool {
	if a == nil {
		logger().Warn("cannot insert nil animation", "index", index)
		return false
	}
	if existing := slices.Index(c.animations, a); existing != -1 {
		logger().Warn("animation already exists", "name", a.Name, "index", existing)
		return false
	}
	if index < 0 || index > len(c.animations) {
		logger().Warn("animation index is invalid", "index", index)
		return false
	}
	if c.Contains(a.Name) {
		logger().Warn("animation name already in use", "name", a.Name)
		return false
	}

	logger().Debug("adding animation", "name", a.Name, "index", index)

	done := c.trackCurrent()
	c.insertAt(a, index)
	done()
	return true
}

// RemoveAnimation removes and discards the animation called name.
func (c *Collection) RemoveAnimation(name string) bool {
	i := c.IndexOf(name)
	if i == -1 {
		logger().Warn("animation doesn't exist", "name", name)
		return false
	}

	logger().Debug("removing animation", "name", name, "index", i)

	done := c.trackCurrent()
	c.removeAt(i)
	done()
	return true
}

// TakeAnimation removes the animation at index and hands it to the caller.
func (c *Collection) TakeAnimation(index int) *Animation {
	if !c.validIndexOrWarn(index) {
		return nil
	}

	done := c.trackCurrent()
	a := c.removeAt(index)
	done()
	return a
}

// Rename changes an animation's name. The new name must be non-empty and not
// used by another animation.
func (c *Collection) Rename(oldName, newName string) bool {
	i := c.IndexOf(oldName)
	if i == -1 {
		logger().Warn("animation doesn't exist", "name", oldName)
		return false
	}
	if newName == "" {
		logger().Warn("animation name cannot be empty", "name", oldName)
		return false
	}
	if newName == oldName {
		return true
	}
	if c.Contains(newName) {
		logger().Warn("animation name already in use", "name", newName)
		return false
	}
	c.animations[i].Name = newName
	c.emit(EventRenamed, i)
	return true
}

// Move relocates the animation at from so that it ends up at to. The
// selection follows the moved animation if it was selected.
func (c *Collection) Move(from, to int) bool {
	if !c.validIndexOrWarn(from) || !c.validIndexOrWarn(to) {
		return false
	}
	if from == to {
		return true
	}

	done := c.trackCurrent()
	wasCurrent := from == c.current
	frame, tick := c.playback.current, c.playback.tick
	a := c.removeAt(from)
	c.insertAt(a, to)
	if wasCurrent {
		c.current = to
		c.playback.SetAnimation(a)
		// A reorder is not a new selection; keep the cursor where it was.
		c.playback.current, c.playback.tick = frame, tick
	}
	done()
	return true
}

// Duplicate inserts a copy of the animation called name right after it,
// under the next generated name.
func (c *Collection) Duplicate(name string) (string, bool) {
	src := c.AnimationNamed(name)
	if src == nil {
		return "", false
	}
	newName := c.PeekNextName()
	if c.Contains(newName) {
		logger().Warn("animation already exists", "name", newName)
		return "", false
	}

	dup := src.Clone()
	dup.Name = newName

	done := c.trackCurrent()
	c.created++
	c.insertAt(dup, c.IndexOf(name)+1)
	done()
	return newName, true
}

// Reset removes every animation, resets the playback cursor and restarts
// name generation.
func (c *Collection) Reset() {
	done := c.trackCurrent()
	for len(c.animations) > 0 {
		c.removeAt(len(c.animations) - 1)
	}
	c.current = -1
	c.playback.Reset()
	c.created = 0
	done()
}

// insertAt performs a validated insertion with its notifications. The first
// animation added is selected.
func (c *Collection) insertAt(a *Animation, index int) {
	c.emit(EventPreAdd, index)

	c.animations = slices.Insert(c.animations, index, a)
	if len(c.animations) == 1 {
		c.current = 0
	} else {
		c.current = Rebase(c.current, index, 1)
	}
	c.playback.SetAnimation(c.CurrentAnimation())

	c.emit(EventPostAdd, index)
	c.emit(EventCountChanged, len(c.animations))
}

// removeAt performs a validated removal with its notifications. A non-empty
// collection keeps a selection if it had one.
func (c *Collection) removeAt(index int) *Animation {
	c.emit(EventPreRemove, index)

	a := c.animations[index]
	prev := c.current
	c.animations = slices.Delete(c.animations, index, index+1)
	c.current = Rebase(prev, index, -1)
	if len(c.animations) == 0 {
		c.current = -1
	} else if c.current < 0 && prev >= 0 {
		c.current = 0
	}
	c.playback.SetAnimation(c.CurrentAnimation())

	c.emit(EventPostRemove, index)
	c.emit(EventCountChanged, len(c.animations))
	return a
}

// trackCurrent snapshots the selection. The returned func emits
// EventCurrentIndexChanged if the selected index or animation changed since.
func (c *Collection) trackCurrent() func() {
	prev, prevAnim := c.current, c.CurrentAnimation()
	return func() {
		if c.current != prev || c.CurrentAnimation() != prevAnim {
			c.emit(EventCurrentIndexChanged, c.current)
		}
	}
}

func (c *Collection) validIndexOrWarn(index int) bool {
	if index < 0 || index >= len(c.animations) {
		logger().Warn("animation index is invalid", "index", index, "count", len(c.animations))
		return false
	}
	return true
}
