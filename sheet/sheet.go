package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/milk9111/spriteanim/animation"
	xdraw "golang.org/x/image/draw"
)

var ErrFrameOutOfBounds = errors.New("sheet: frame out of bounds")

// Load decodes a PNG or TGA sprite sheet. The format is chosen by extension.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	default:
		return nil, fmt.Errorf("sheet: unknown extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("sheet: decode %s: %w", path, err)
	}
	return img, nil
}

// Frame copies frame i of a out of the sheet. The result's bounds start at 0,0.
func Frame(img image.Image, a *animation.Animation, i int) (*image.NRGBA, error) {
	if img == nil || a == nil {
		return nil, fmt.Errorf("sheet: frame: nil sheet or animation")
	}
	r := a.FrameRect(i)
	if i < 0 || i >= a.FrameCount || r.Empty() || !r.In(img.Bounds()) {
		return nil, fmt.Errorf("%w: %s frame %d at %v, sheet %v", ErrFrameOutOfBounds, a.Name, i, r, img.Bounds())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)
	return dst, nil
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling so
// pixel art stays crisp.
func Scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	if factor < 1 {
		factor = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// ExportFrames writes every frame of a into dir as <name>_<i>.webp and returns
// the written paths.
func ExportFrames(dir string, img image.Image, a *animation.Animation, scale int) ([]string, error) {
	if a == nil {
		return nil, fmt.Errorf("sheet: export: nil animation")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sheet: export %s: %w", a.Name, err)
	}

	base := fileSafe(a.Name)
	paths := make([]string, 0, a.FrameCount)
	for i := 0; i < a.FrameCount; i++ {
		frame, err := Frame(img, a, i)
		if err != nil {
			return paths, err
		}
		out := filepath.Join(dir, fmt.Sprintf("%s_%d.webp", base, i))
		if err := writeWebP(out, Scale(frame, scale)); err != nil {
			return paths, err
		}
		paths = append(paths, out)
	}
	return paths, nil
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sheet: create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("sheet: encode %s: %w", path, err)
	}
	return f.Close()
}

func fileSafe(name string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, name)
	if s == "" {
		return "animation"
	}
	return s
}
