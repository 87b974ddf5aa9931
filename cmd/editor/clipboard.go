package main

import (
	"log/slog"

	"golang.design/x/clipboard"
)

// clipboardBridge guards access to the system clipboard, which is not
// available on every platform (headless Linux without X11, for instance).
type clipboardBridge struct {
	ok bool
}

func newClipboardBridge() *clipboardBridge {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable", "error", err)
		return &clipboardBridge{}
	}
	return &clipboardBridge{ok: true}
}

func (b *clipboardBridge) write(data []byte) bool {
	if b == nil || !b.ok {
		return false
	}
	clipboard.Write(clipboard.FmtText, data)
	return true
}

func (b *clipboardBridge) read() []byte {
	if b == nil || !b.ok {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

// copyCurrent puts the current animation on the clipboard as JSON.
func (e *Editor) copyCurrent() {
	cur := e.animations().CurrentAnimation()
	if cur == nil {
		return
	}
	data, err := cur.Write()
	if err != nil {
		slog.Error("copy failed", "name", cur.Name, "error", err)
		return
	}
	if !e.clip.write(data) {
		e.setStatus("clipboard unavailable")
		return
	}
	e.setStatus("copied " + cur.Name)
}

// paste inserts the animation on the clipboard after the current one and
// selects it.
func (e *Editor) paste() {
	data := e.clip.read()
	if len(data) == 0 {
		e.setStatus("clipboard is empty")
		return
	}
	coll := e.animations()
	name, err := coll.InsertJSON(data, coll.CurrentIndex()+1)
	if err != nil {
		slog.Warn("paste failed", "error", err)
		e.setStatus("clipboard does not hold an animation")
		return
	}
	coll.SetCurrentIndex(coll.IndexOf(name))
	e.setStatus("pasted " + name)
}
