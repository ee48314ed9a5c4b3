package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bam"
)

// Layout: wave trace on the left two thirds, phasor dial on the right.

func (a *App) waveRect() (x, y, w, h int32) {
	margin := int32(40)
	return margin, margin + 40, a.Width*2/3 - 2*margin, a.Height - 2*margin - 80
}

func (a *App) drawGrid() {
	x, y, w, h := a.waveRect()

	// quadrant boundaries
	for i := int32(0); i <= 4; i++ {
		gx := x + w*i/4
		rl.DrawLine(gx, y, gx, y+h, ColGrid)
	}
	rl.DrawLine(x, y, x+w, y, ColGrid)
	rl.DrawLine(x, y+h/2, x+w, y+h/2, ColGrid)
	rl.DrawLine(x, y+h, x+w, y+h, ColGrid)
}

func (a *App) drawWave() {
	x, y, w, h := a.waveRect()
	midY := float32(y) + float32(h)/2
	amp := float32(h) / 2

	var prevSin, prevCos rl.Vector2
	for px := int32(0); px <= w; px++ {
		angle := uint16(int(px) % int(w) * bam.Turn / int(w))
		s, c := bam.SinCos(angle)

		fx := float32(x + px)
		sp := rl.NewVector2(fx, midY-float32(s)/bam.Amplitude*amp)
		cp := rl.NewVector2(fx, midY-float32(c)/bam.Amplitude*amp)

		if px > 0 {
			rl.DrawLineV(prevSin, sp, ColSelect)
			rl.DrawLineV(prevCos, cp, ColTextDim)
		}
		prevSin, prevCos = sp, cp
	}

	// cursor at the current angle
	cx := x + int32(int(a.Angle&0x3fff)*int(w)/bam.Turn)
	rl.DrawLine(cx, y, cx, y+h, ColAccent)

	s := bam.Sin(a.Angle)
	rl.DrawCircle(cx, int32(midY-float32(s)/bam.Amplitude*amp), 4, ColSelect)
}

func (a *App) drawPhasor() {
	cx := a.Width * 5 / 6
	cy := a.Height / 2
	r := float32(a.Width) / 8

	rl.DrawCircleLines(cx, cy, r, ColGrid)
	rl.DrawLine(cx-int32(r)-10, cy, cx+int32(r)+10, cy, ColGrid)
	rl.DrawLine(cx, cy-int32(r)-10, cx, cy+int32(r)+10, ColGrid)

	s, c := bam.SinCos(a.Angle)
	px := cx + int32(float32(c)/bam.Amplitude*r)
	py := cy - int32(float32(s)/bam.Amplitude*r)

	rl.DrawLine(cx, cy, px, py, ColAccent)
	rl.DrawCircle(px, py, 5, ColSelect)

	// component projections
	rl.DrawLine(px, py, px, cy, ColTextDim)
	rl.DrawLine(px, py, cx, py, ColTextDim)
}

func (a *App) DrawHUD() {
	a.drawText("bam", 30, 24, 24, ColSelect)
	a.drawText(":: integer sin/cos scope", 90, 28, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(a.Width)-140, 28, 16, col)

	angle := a.Angle & 0x3fff
	s, c := bam.SinCos(a.Angle)
	a.drawText(fmt.Sprintf("angle %5d   deg %7.2f   sin %6d   cos %6d   step %d",
		angle, 360*float64(angle)/bam.Turn, s, c, a.Step), 40, int(a.Height)-50, 16, ColAccent)

	a.drawText("[SPACE] PAUSE  [LEFT/RIGHT] SCRUB  [UP/DOWN] SPEED  [ESC/Q] QUIT", 40, int(a.Height)-26, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(a.Width)-100, int(a.Height)-26, 14, ColTextDim)
}
