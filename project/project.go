package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/spriteanim/animation"
)

// Version is written into every saved project.
const Version = "1.0"

var ErrUnsupportedVersion = errors.New("project: unsupported version")

var pkgLogger *slog.Logger

// SetLogger replaces the package logger. nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default().With("component", "project")
}

// file is the on-disk layout. Projects from before multi-animation support
// store a single animation under animationPlayback instead of animationSystem.
type file struct {
	Version           string          `json:"version"`
	CanvasWidth       int             `json:"canvasWidth"`
	CanvasHeight      int             `json:"canvasHeight"`
	Sheet             string          `json:"sheet,omitempty"`
	AnimationSystem   json.RawMessage `json:"animationSystem,omitempty"`
	AnimationPlayback json.RawMessage `json:"animationPlayback,omitempty"`
}

// Project is a sprite sheet plus the animations defined over it.
type Project struct {
	Path   string
	Canvas image.Point
	// Sheet is the sprite sheet image, relative to the project file.
	Sheet      string
	Animations *animation.Collection
}

// New returns an empty, unsaved project.
func New(canvas image.Point) *Project {
	return &Project{
		Canvas:     canvas,
		Animations: animation.NewCollection(),
	}
}

// Load opens the project at path.
func Load(path string) (*Project, error) {
	p := New(image.Point{})
	p.Path = path
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload replaces the in-memory state with the file contents. The collection
// is reset rather than replaced so existing subscribers keep receiving events.
func (p *Project) Reload() error {
	if p.Path == "" {
		return fmt.Errorf("project: reload: no path")
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return fmt.Errorf("project: load %s: %w", p.Path, err)
	}
	if err := p.Unmarshal(data); err != nil {
		return fmt.Errorf("project: load %s: %w", p.Path, err)
	}
	logger().Debug("loaded project", "path", p.Path, "animations", p.Animations.Count())
	return nil
}

// Unmarshal decodes data into p.
func (p *Project) Unmarshal(data []byte) error {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("project: unmarshal: %w", err)
	}
	if err := checkVersion(f.Version); err != nil {
		return err
	}

	// The animations are replaced only once the new document has decoded, so
	// a bad file never leaves a half-loaded project behind.
	switch {
	case len(f.AnimationSystem) > 0:
		if err := p.Animations.Replace(f.AnimationSystem); err != nil {
			return fmt.Errorf("project: unmarshal: %w", err)
		}
	case len(f.AnimationPlayback) > 0:
		logger().Info("converting single-animation project", "path", p.Path)
		if err := p.Animations.Replace(f.AnimationPlayback); err != nil {
			return fmt.Errorf("project: unmarshal: %w", err)
		}
	default:
		p.Animations.Reset()
	}
	p.Canvas = image.Pt(f.CanvasWidth, f.CanvasHeight)
	p.Sheet = f.Sheet
	return nil
}

// Marshal encodes p in the current format.
func (p *Project) Marshal() ([]byte, error) {
	sys := map[string]json.RawMessage{}
	if err := p.Animations.WriteAnimations(sys); err != nil {
		return nil, err
	}
	if err := p.Animations.Write(sys); err != nil {
		return nil, err
	}
	sysData, err := json.Marshal(sys)
	if err != nil {
		return nil, fmt.Errorf("project: marshal animations: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file{
		Version:         Version,
		CanvasWidth:     p.Canvas.X,
		CanvasHeight:    p.Canvas.Y,
		Sheet:           p.Sheet,
		AnimationSystem: sysData,
	}); err != nil {
		return nil, fmt.Errorf("project: marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the project to p.Path.
func (p *Project) Save() error {
	if p.Path == "" {
		return fmt.Errorf("project: save: no path")
	}
	return p.SaveAs(p.Path)
}

// SaveAs writes the project to path and makes it the project's path.
func (p *Project) SaveAs(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	// Write then rename so watchers never observe a half-written file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("project: save %s: %w", path, err)
	}
	p.Path = path
	return nil
}

// SheetPath resolves Sheet against the project's directory.
func (p *Project) SheetPath() string {
	if p.Sheet == "" || filepath.IsAbs(p.Sheet) || p.Path == "" {
		return p.Sheet
	}
	return filepath.Join(filepath.Dir(p.Path), p.Sheet)
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	major, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	want, _ := strconv.Atoi(strings.SplitN(Version, ".", 2)[0])
	if n > want {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	return nil
}
