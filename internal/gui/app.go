package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
)

type App struct {
	Angle   uint16
	Step    uint16
	Running bool
	Width   int32
	Height  int32
	Font    rl.Font

	quit bool
}

func initWindow(w, h int32) {
	rl.InitWindow(w, h, "bam")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(width, height int) *App {
	return &App{
		Step:    16,
		Running: true,
		Width:   int32(width),
		Height:  int32(height),
		Font:    loadFont(),
	}
}

// Run opens the scope window and blocks until it is closed.
func Run(width, height int) {
	initWindow(int32(width), int32(height))
	defer rl.CloseWindow()

	app := NewApp(width, height)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}

	scrub := a.Step
	if rl.IsKeyDown(rl.KeyLeftShift) {
		scrub = 256
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyDown(rl.KeyL) {
		a.Angle += scrub
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyDown(rl.KeyH) {
		a.Angle -= scrub
	}

	if rl.IsKeyPressed(rl.KeyUp) && a.Step < 1024 {
		a.Step *= 2
	}
	if rl.IsKeyPressed(rl.KeyDown) && a.Step > 1 {
		a.Step /= 2
	}

	if a.Running {
		a.Angle += a.Step // wraps onto the circle
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawGrid()
	a.drawWave()
	a.drawPhasor()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
