package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return p
	}

	cases := []struct {
		name    string
		path    string
		wantErr bool
		check   func(t *testing.T, c Config)
	}{
		{
			name: "missing_file_defaults",
			path: filepath.Join(dir, "nope.yaml"),
			check: func(t *testing.T, c Config) {
				if c != Default() {
					t.Fatalf("expected defaults, got %+v", c)
				}
			},
		},
		{
			name: "partial_override",
			path: write("partial.yaml", "canvas:\n  width: 128\n  height: 32\npreview:\n  background: Black\n"),
			check: func(t *testing.T, c Config) {
				if c.CanvasSize().X != 128 || c.CanvasSize().Y != 32 {
					t.Fatalf("expected 128x32, got %v", c.CanvasSize())
				}
				if c.Window.Width != Default().Window.Width {
					t.Fatalf("expected default window width, got %d", c.Window.Width)
				}
				if c.BackgroundColor() != colornames.Black {
					t.Fatalf("expected black, got %v", c.BackgroundColor())
				}
			},
		},
		{
			name:    "bad_colour",
			path:    write("colour.yaml", "preview:\n  background: notacolour\n"),
			wantErr: true,
		},
		{
			name:    "bad_canvas",
			path:    write("canvas.yaml", "canvas:\n  width: 0\n"),
			wantErr: true,
		},
		{
			name:    "bad_yaml",
			path:    write("bad.yaml", "window: [\n"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := Default()
	cfg.Export.Scale = 4
	cfg.Watch = false
	if err := Save(p, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	if Path() != DefaultPath {
		t.Fatalf("expected %s, got %s", DefaultPath, Path())
	}
	t.Setenv(EnvPath, "/tmp/x.yaml")
	if Path() != "/tmp/x.yaml" {
		t.Fatalf("expected env path, got %s", Path())
	}
}
