package picker

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowStatus bool

	// ClearColor fills the screen before each frame. Zero means dark grey.
	ClearColor color.Color

	// OnUpdate, if set, runs once per tick after the canvas has updated.
	OnUpdate func()
}

// ticksPerSecond is the fixed update rate Ebitengine runs Update at.
const ticksPerSecond = 60

var defaultClearColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}

type game struct {
	canvas *Canvas
	cfg    RunConfig
}

func (g *game) Update() error {
	g.canvas.Update(1.0 / ticksPerSecond)
	g.canvas.PollInput()
	if g.cfg.OnUpdate != nil {
		g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.canvas.Draw(screen)
	if g.cfg.ShowStatus {
		g.canvas.drawStatus(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Vec2{float64(outsideWidth), float64(outsideHeight)}
	if size != g.canvas.viewportSize {
		g.canvas.SetViewportSize(size)
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives canvas with real mouse and keyboard
// input until the window is closed. It blocks.
func Run(canvas *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	if cfg.ClearColor == nil {
		cfg.ClearColor = defaultClearColor
	}
	if cfg.Title == "" {
		cfg.Title = "picker"
	}
	canvas.SetViewportSize(Vec2{float64(cfg.Width), float64(cfg.Height)})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)
	if err := ebiten.RunGame(&game{canvas: canvas, cfg: cfg}); err != nil {
		return fmt.Errorf("run canvas: %w", err)
	}
	return nil
}

// fmtStatus formats the status overlay text.
func fmtStatus(info CanvasInfo, mode string, fps float64) string {
	grid := "off"
	if info.GridVisible {
		grid = fmt.Sprintf("%d", info.GridSize)
	}
	snap := "off"
	if info.SnapToGrid {
		snap = "on"
	}
	return fmt.Sprintf("items: %d  selected: %d  mode: %s\nzoom: %.0f%%  pan: (%.0f, %.0f)\ngrid: %s  snap: %s\nFPS: %.1f",
		info.Items, info.Selected, mode,
		info.Zoom*100, info.Pan.X, info.Pan.Y,
		grid, snap, fps)
}

func longestLine(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		n = max(n, len(line))
	}
	return n
}
