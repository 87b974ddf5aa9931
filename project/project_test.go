package project

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/milk9111/spriteanim/animation"
)

func TestMain(m *testing.M) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetLogger(quiet)
	animation.SetLogger(quiet)
	os.Exit(m.Run())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hero.json")

	p := New(image.Pt(64, 16))
	p.Sheet = "hero.png"
	p.Animations.CreateAnimation(p.Canvas)
	p.Animations.CreateAnimation(p.Canvas)
	p.Animations.Rename("Animation 2", "run")
	p.Animations.SetCurrentIndex(1)
	p.Animations.Playback().Scale = 2

	if err := p.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected temporary file to be gone, got %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Canvas != p.Canvas || got.Sheet != "hero.png" {
		t.Fatalf("expected canvas %v sheet hero.png, got %v %q", p.Canvas, got.Canvas, got.Sheet)
	}
	if !slices.Equal(got.Animations.Names(), []string{"Animation 1", "run"}) {
		t.Fatalf("unexpected names %v", got.Animations.Names())
	}
	if got.Animations.CurrentIndex() != 1 || got.Animations.Playback().Scale != 2 {
		t.Fatalf("expected selection 1 and scale 2, got %d %v", got.Animations.CurrentIndex(), got.Animations.Playback().Scale)
	}
	if got.SheetPath() != filepath.Join(filepath.Dir(path), "hero.png") {
		t.Fatalf("unexpected sheet path %s", got.SheetPath())
	}
}

func TestUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr error
		check   func(t *testing.T, p *Project)
	}{
		{
			name: "legacy_single_animation",
			data: `{"version":"0.9","canvasWidth":32,"canvasHeight":8,"animationPlayback":{"fps":6,"frameCount":4,"frameX":0,"frameY":0,"frameWidth":8,"frameHeight":8,"scale":3,"loop":true}}`,
			check: func(t *testing.T, p *Project) {
				a := p.Animations.CurrentAnimation()
				if a == nil || a.Name != "Animation 1" || a.FPS != 6 || a.FrameCount != 4 {
					t.Fatalf("unexpected legacy animation %v", a)
				}
				if pb := p.Animations.Playback(); pb.Scale != 3 || !pb.Loop || pb.Playing {
					t.Fatalf("unexpected playback %+v", pb)
				}
			},
		},
		{
			name: "no_animations",
			data: `{"version":"1.0","canvasWidth":16,"canvasHeight":16}`,
			check: func(t *testing.T, p *Project) {
				if p.Animations.Count() != 0 || p.Canvas != image.Pt(16, 16) {
					t.Fatalf("expected empty 16x16 project")
				}
			},
		},
		{
			name:    "future_version",
			data:    `{"version":"2.1"}`,
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "garbage_version",
			data:    `{"version":"x"}`,
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(image.Point{})
			err := p.Unmarshal([]byte(tc.data))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tc.check(t, p)
		})
	}
}

func TestReloadKeepsSubscribers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	p := New(image.Pt(8, 8))
	p.Animations.CreateAnimation(p.Canvas)
	if err := p.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	q := &animation.EventQueue{}
	p.Animations.Subscribe(q.Handler())
	p.Animations.CreateAnimation(p.Canvas)
	q.Drain()

	if err := p.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.Animations.Count() != 1 {
		t.Fatalf("expected file contents, got %d animations", p.Animations.Count())
	}
	if q.Len() == 0 {
		t.Fatalf("expected reload to notify existing subscribers")
	}
}

func TestReloadFailureKeepsProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	p := New(image.Pt(8, 8))
	p.Animations.CreateAnimation(p.Canvas)
	p.Animations.CreateAnimation(p.Canvas)
	if err := p.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	bad := `{"version":"1.0","canvasWidth":4,"canvasHeight":4,"animationSystem":{"animations":[{"name":"a"},{"name":"a"}]}}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	q := &animation.EventQueue{}
	p.Animations.Subscribe(q.Handler())

	if err := p.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if !slices.Equal(p.Animations.Names(), []string{"Animation 1", "Animation 2"}) {
		t.Fatalf("expected previous animations, got %v", p.Animations.Names())
	}
	if p.Canvas != image.Pt(8, 8) {
		t.Fatalf("expected canvas 8x8, got %v", p.Canvas)
	}
	if q.Len() != 0 {
		t.Fatalf("expected no events, got %v", q.Drain())
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.json")
	p := New(image.Pt(8, 8))
	if err := p.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p.Animations.CreateAnimation(p.Canvas)
	if err := p.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		if got != abs {
			t.Fatalf("expected %s, got %s", abs, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}
