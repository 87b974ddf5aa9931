package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/spriteanim/animation"
)

// stripe builds a sheet of four 2x3 frames, each filled with a distinct red.
func stripe() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 3))
	for x := 0; x < 8; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x/2*50 + 10), A: 255})
		}
	}
	return img
}

func strip() *animation.Animation {
	return &animation.Animation{Name: "walk cycle", FPS: 4, FrameCount: 4, FrameWidth: 2, FrameHeight: 3}
}

func TestFrame(t *testing.T) {
	img := stripe()
	a := strip()

	for i := 0; i < a.FrameCount; i++ {
		f, err := Frame(img, a, i)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if f.Bounds() != image.Rect(0, 0, 2, 3) {
			t.Fatalf("frame %d: unexpected bounds %v", i, f.Bounds())
		}
		if got := f.NRGBAAt(1, 2).R; got != uint8(i*50+10) {
			t.Fatalf("frame %d: expected red %d, got %d", i, i*50+10, got)
		}
	}

	cases := []struct {
		name  string
		frame int
		anim  *animation.Animation
	}{
		{"negative", -1, a},
		{"past_count", 4, a},
		{"outside_sheet", 0, &animation.Animation{FrameCount: 1, FrameX: 7, FrameWidth: 2, FrameHeight: 3}},
		{"empty_frame", 0, &animation.Animation{FrameCount: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Frame(img, tc.anim, tc.frame); !errors.Is(err, ErrFrameOutOfBounds) {
				t.Fatalf("expected ErrFrameOutOfBounds, got %v", err)
			}
		})
	}
}

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{B: 255, A: 255})

	got := Scale(src, 3)
	if got.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("unexpected bounds %v", got.Bounds())
	}
	if got.NRGBAAt(2, 2).R != 255 || got.NRGBAAt(3, 0).B != 255 {
		t.Fatalf("expected nearest-neighbour blocks")
	}
}

func TestLoadAndExport(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sheet.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, stripe()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 3) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	out := filepath.Join(dir, "out")
	paths, err := ExportFrames(out, img, strip(), 2)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(paths) != 4 || filepath.Base(paths[3]) != "walk_cycle_3.webp" {
		t.Fatalf("unexpected paths %v", paths)
	}
	for _, p := range paths {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Fatalf("expected non-empty %s, err=%v", p, err)
		}
	}

	if _, err := Load(filepath.Join(dir, "sheet.bmp")); err == nil {
		t.Fatalf("expected unknown extension error")
	}
}
