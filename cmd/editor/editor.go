package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spriteanim/animation"
	"github.com/milk9111/spriteanim/config"
	"github.com/milk9111/spriteanim/project"
)

// ownSaveWindow is how long file events are ignored after the editor saves,
// so its own writes do not trigger a reload.
const ownSaveWindow = time.Second

// Editor previews and edits the animations of one project.
type Editor struct {
	cfg     config.Config
	project *project.Project
	sheet   *ebiten.Image

	ui      *ebitenui.UI
	left    *LeftPanelUI
	unwatch func()

	watcher  *project.Watcher
	lastSave time.Time

	clip *clipboardBridge

	status      string
	statusUntil time.Time
}

// NewEditor builds the UI for p. sheet may be nil when the project has no
// sprite sheet yet.
func NewEditor(cfg config.Config, p *project.Project, sheet *ebiten.Image) *Editor {
	e := &Editor{cfg: cfg, project: p, sheet: sheet, clip: newClipboardBridge()}
	e.ui, e.left = BuildEditorUI(e.actions())
	e.unwatch = e.left.AnimationPanel.Observe(p.Animations)
	e.project.Animations.Playback().TicksPerSecond = cfg.Preview.TicksPerSecond
	return e
}

// Watch reloads the project whenever w reports a change.
func (e *Editor) Watch(w *project.Watcher) {
	e.watcher = w
}

// Close releases the watcher and stops following the collection.
func (e *Editor) Close() error {
	if e.unwatch != nil {
		e.unwatch()
	}
	if e.watcher != nil {
		return e.watcher.Close()
	}
	return nil
}

func (e *Editor) animations() *animation.Collection {
	return e.project.Animations
}

func (e *Editor) actions() panelActions {
	return panelActions{
		Select: func(i int) { e.animations().SetCurrentIndex(i) },
		New: func() {
			canvas := e.project.Canvas
			if canvas == (image.Point{}) {
				canvas = e.cfg.CanvasSize()
			}
			if name, ok := e.animations().CreateAnimation(canvas); ok {
				e.animations().SetCurrentIndex(e.animations().IndexOf(name))
			} else {
				e.setStatus("could not create animation")
			}
		},
		Delete: func() {
			if cur := e.animations().CurrentAnimation(); cur != nil {
				e.animations().RemoveAnimation(cur.Name)
			}
		},
		MoveUp: func() {
			if i := e.animations().CurrentIndex(); i > 0 {
				e.animations().Move(i, i-1)
			}
		},
		MoveDown: func() {
			if i := e.animations().CurrentIndex(); i >= 0 && i < e.animations().Count()-1 {
				e.animations().Move(i, i+1)
			}
		},
		Duplicate: func() {
			cur := e.animations().CurrentAnimation()
			if cur == nil {
				return
			}
			if _, ok := e.animations().Duplicate(cur.Name); !ok {
				e.setStatus("could not duplicate " + cur.Name)
			}
		},
		Rename: func(oldName, newName string) bool {
			return e.animations().Rename(oldName, newName)
		},
		Copy:  e.copyCurrent,
		Paste: e.paste,
		TogglePlay: func() {
			pb := e.animations().Playback()
			if pb.Animation() != nil {
				pb.Playing = !pb.Playing
			}
		},
		ToggleLoop: func() {
			pb := e.animations().Playback()
			pb.Loop = !pb.Loop
		},
		ToggleReverse: func() {
			if cur := e.animations().CurrentAnimation(); cur != nil {
				cur.Reverse = !cur.Reverse
			}
		},
		AdjustFPS: func(delta int) {
			if cur := e.animations().CurrentAnimation(); cur != nil {
				cur.FPS = max(1, cur.FPS+delta)
			}
		},
		AdjustFrames: func(delta int) {
			cur := e.animations().CurrentAnimation()
			if cur == nil {
				return
			}
			cur.FrameCount = max(1, cur.FrameCount+delta)
			pb := e.animations().Playback()
			pb.SetCurrentFrame(pb.CurrentFrame())
		},
		AdjustScale: func(delta float64) {
			pb := e.animations().Playback()
			pb.Scale = min(16, max(0.5, pb.Scale+delta))
		},
		Save: e.save,
	}
}

func (e *Editor) setStatus(msg string) {
	slog.Info(msg)
	e.status = msg
	e.statusUntil = time.Now().Add(3 * time.Second)
}

func (e *Editor) save() {
	if e.project.Path == "" {
		e.setStatus("project has no path; start the editor with -project")
		return
	}
	e.lastSave = time.Now()
	if err := e.project.Save(); err != nil {
		slog.Error("save failed", "path", e.project.Path, "error", err)
		e.setStatus("save failed")
		return
	}
	e.setStatus("saved " + e.project.Path)
}

// pollWatcher applies pending file changes without blocking the game loop.
func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			if time.Since(e.lastSave) < ownSaveWindow {
				continue
			}
			if err := e.project.Reload(); err != nil {
				slog.Warn("reload failed", "path", e.project.Path, "error", err)
				e.setStatus("reload failed")
				continue
			}
			e.setStatus("reloaded " + e.project.Path)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher = nil
				return
			}
			slog.Warn("watch error", "error", err)
		default:
			return
		}
	}
}

func (e *Editor) typing() bool {
	if e.ui == nil {
		return false
	}
	_, ok := e.ui.GetFocusedWidget().(*widget.TextInput)
	return ok
}

func (e *Editor) Update() error {
	e.pollWatcher()

	if !e.typing() {
		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
		pb := e.animations().Playback()
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyS) && ctrl:
			e.save()
		case inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrl:
			e.copyCurrent()
		case inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrl:
			e.paste()
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			if pb.Animation() != nil {
				pb.Playing = !pb.Playing
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
			pb.SetCurrentFrame(pb.CurrentFrame() + 1)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
			pb.SetCurrentFrame(pb.CurrentFrame() - 1)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
			if i := e.animations().CurrentIndex(); i > 0 {
				e.animations().SetCurrentIndex(i - 1)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
			if i := e.animations().CurrentIndex(); i < e.animations().Count()-1 {
				e.animations().SetCurrentIndex(i + 1)
			}
		}
	}

	e.ui.Update()
	e.animations().Playback().Update()

	pb := e.animations().Playback()
	e.left.Playback.Sync(pb.Playing, pb.Loop)
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.BackgroundColor())
	e.drawPreview(screen)
	e.ui.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Window.Width, e.cfg.Window.Height
}

func (e *Editor) title() string {
	if e.project.Path == "" {
		return e.cfg.Window.Title
	}
	return fmt.Sprintf("%s - %s", e.cfg.Window.Title, e.project.Path)
}
