package main

import (
	"fmt"
	"slices"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/spriteanim/animation"
)

// AnimationEntry is one row of the animation list. Rows hold the animation
// pointer so a selection survives renames and reordering.
type AnimationEntry struct {
	Anim *animation.Animation
}

// AnimationPanel mirrors a Collection into a list widget. It follows the
// collection's events and patches its rows instead of rebuilding them.
type AnimationPanel struct {
	list       *widget.List
	countLabel *widget.Label
	entries    []any

	openRenameDialog func(idx int, current string)

	// suppressEvents, when true, keeps programmatic selections from being
	// reported back to the collection as user clicks.
	suppressEvents bool
}

func NewAnimationPanel() *AnimationPanel {
	return &AnimationPanel{}
}

// Observe fills the list from c and keeps it in sync. The returned func stops
// following c.
func (ap *AnimationPanel) Observe(c *animation.Collection) func() {
	ap.entries = make([]any, 0, c.Count())
	for _, a := range c.Animations() {
		ap.entries = append(ap.entries, &AnimationEntry{Anim: a})
	}
	ap.refresh(c.CurrentIndex())
	ap.setCount(c.Count())
	return c.Subscribe(ap.handle)
}

func (ap *AnimationPanel) handle(c *animation.Collection, evt animation.Event) {
	switch evt.Kind {
	case animation.EventPostAdd:
		ap.entries = slices.Insert(ap.entries, evt.Index, any(&AnimationEntry{Anim: c.AnimationAt(evt.Index)}))
		ap.refresh(c.CurrentIndex())
	case animation.EventPostRemove:
		ap.entries = slices.Delete(ap.entries, evt.Index, evt.Index+1)
		ap.refresh(c.CurrentIndex())
	case animation.EventRenamed:
		ap.refresh(c.CurrentIndex())
	case animation.EventCountChanged:
		ap.setCount(evt.Index)
	case animation.EventCurrentIndexChanged:
		ap.SetSelected(evt.Index)
	}
}

// label renders a row as "N. name" using the row's current position.
func (ap *AnimationPanel) label(e any) string {
	entry, ok := e.(*AnimationEntry)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d. %s", slices.Index(ap.entries, e)+1, entry.Anim.Name)
}

func (ap *AnimationPanel) refresh(selected int) {
	if ap == nil || ap.list == nil {
		return
	}
	ap.suppressEvents = true
	ap.list.SetEntries(ap.entries)
	ap.suppressEvents = false
	ap.SetSelected(selected)
}

func (ap *AnimationPanel) setCount(n int) {
	if ap == nil || ap.countLabel == nil {
		return
	}
	if n == 1 {
		ap.countLabel.Label = "1 animation"
		return
	}
	ap.countLabel.Label = fmt.Sprintf("%d animations", n)
}

// SetSelected highlights row idx without reporting it as a click. An index
// outside the rows leaves the highlight alone.
func (ap *AnimationPanel) SetSelected(idx int) {
	if ap == nil || ap.list == nil {
		return
	}
	if idx < 0 || idx >= len(ap.entries) {
		return
	}
	ap.suppressEvents = true
	ap.list.SetSelectedEntry(ap.entries[idx])
	ap.suppressEvents = false
}
