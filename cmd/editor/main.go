package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/spriteanim/config"
	"github.com/milk9111/spriteanim/project"
	"github.com/milk9111/spriteanim/sheet"
)

func main() {
	_ = godotenv.Load()

	projectPath := flag.String("project", "project.json", "Project file to open; created on first save if missing")
	configPath := flag.String("config", config.Path(), "YAML settings file")
	sheetPath := flag.String("sheet", "", "Sprite sheet to preview instead of the project's own")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	p, err := project.Load(*projectPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("starting a new project", "path", *projectPath)
		p = project.New(cfg.CanvasSize())
		p.Path = *projectPath
	case err != nil:
		slog.Error("failed to load project", "error", err)
		os.Exit(1)
	}

	if *sheetPath == "" {
		*sheetPath = p.SheetPath()
	}
	var sheetImg *ebiten.Image
	if *sheetPath != "" {
		img, err := sheet.Load(*sheetPath)
		if err != nil {
			slog.Warn("failed to load sprite sheet", "path", *sheetPath, "error", err)
		} else {
			sheetImg = ebiten.NewImageFromImage(img)
		}
	}

	editor := NewEditor(cfg, p, sheetImg)
	defer editor.Close()

	if cfg.Watch {
		if w, err := project.NewWatcher(p.Path); err != nil {
			slog.Warn("not watching project", "path", p.Path, "error", err)
		} else {
			editor.Watch(w)
		}
	}

	ebiten.SetWindowTitle(editor.title())
	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*scale), int(float64(cfg.Window.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Preview.TicksPerSecond > 0 {
		ebiten.SetTPS(cfg.Preview.TicksPerSecond)
	}

	if err := ebiten.RunGame(editor); err != nil {
		slog.Error("editor stopped", "error", err)
		os.Exit(1)
	}
}
