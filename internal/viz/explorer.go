package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bam"
)

const (
	canvasWidth  = 80
	canvasHeight = 20

	errHistoryCapacity = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Explorer is a live walk around the binary-angle circle: the focused
// wave on a braille canvas with a cursor at the current angle, next to
// a readout comparing the integer result against the float reference.
type Explorer struct {
	angle   uint16
	step    uint16
	running bool
	showCos bool
	canvas  *Canvas
	errHist []float64
}

func NewExplorer() Explorer {
	return Explorer{
		step:    32,
		running: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		errHist: make([]float64, 0, errHistoryCapacity),
	}
}

func (m Explorer) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab":
			m.showCos = !m.showCos
		case "right":
			m.advance(m.step)
		case "left":
			m.advance(-m.step)
		case "shift+right":
			m.advance(1)
		case "shift+left":
			m.advance(^uint16(0))
		case "+", "=":
			if m.step < 1024 {
				m.step *= 2
			}
		case "-", "_":
			if m.step > 1 {
				m.step /= 2
			}
		}
	case TickMsg:
		if m.running {
			m.advance(m.step)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Explorer) advance(delta uint16) {
	m.angle += delta // wraps onto the circle

	m.errHist = append(m.errHist, float64(m.focused(m.angle))-math.Round(m.reference(m.angle)))
	if len(m.errHist) > errHistoryCapacity {
		m.errHist = m.errHist[1:]
	}
}

func (m Explorer) focused(a uint16) int32 {
	if m.showCos {
		return bam.Cos(a)
	}
	return bam.Sin(a)
}

func (m Explorer) reference(a uint16) float64 {
	theta := 2 * math.Pi * float64(a) / bam.Turn
	if m.showCos {
		return bam.Amplitude * math.Cos(theta)
	}
	return bam.Amplitude * math.Sin(theta)
}

// draw paints one full cycle of the focused wave plus a cursor column
// at the current angle.
func (m Explorer) draw() {
	m.canvas.Clear()

	cw, ch := canvasWidth*2, canvasHeight*4
	midY := ch / 2
	amp := float64(ch)/2 - 2

	prevX, prevY := 0, midY
	for x := 0; x < cw; x++ {
		a := uint16(x * bam.Turn / cw)
		y := midY - int(float64(m.focused(a))/bam.Amplitude*amp)
		if x > 0 {
			m.canvas.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}

	// axis
	m.canvas.DrawLine(0, midY, cw-1, midY)

	cursorX := int(m.angle&0x3fff) * cw / bam.Turn
	m.canvas.DrawLine(cursorX, 0, cursorX, ch-1)
}

func (m Explorer) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	angle := m.angle & 0x3fff
	s, c := bam.SinCos(m.angle)
	ref := m.reference(m.angle)

	focusName, otherName := "sin", "cos"
	focusVal, otherVal := s, c
	if m.showCos {
		focusName, otherName = "cos", "sin"
		focusVal, otherVal = c, s
	}

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("BAM EXPLORER") + "\n")
	sb.WriteString(fmt.Sprintf("%s  step %d\n\n", status, m.step))

	sb.WriteString(labelStyle.Render("Angle") + valueStyle.Render(fmt.Sprintf("%5d / %d", angle, bam.Turn)) + "\n")
	sb.WriteString(labelStyle.Render("Degrees") + valueStyle.Render(fmt.Sprintf("%.2f", 360*float64(angle)/bam.Turn)) + "\n\n")

	sb.WriteString(focusStyle.Render(fmt.Sprintf("%-11s%d", focusName, focusVal)) + "\n")
	sb.WriteString(labelStyle.Render(otherName) + valueStyle.Render(fmt.Sprintf("%d", otherVal)) + "\n")
	sb.WriteString(labelStyle.Render("reference") + valueStyle.Render(fmt.Sprintf("%.2f", ref)) + "\n")
	sb.WriteString(labelStyle.Render("error") + valueStyle.Render(fmt.Sprintf("%.0f", float64(focusVal)-math.Round(ref))) + "\n")

	if len(m.errHist) > 1 {
		chart := asciigraph.Plot(m.errHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("error (counts)"))
		sb.WriteString(graphStyle.Render(chart) + "\n")
	}

	sb.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause ←→:Step ⇧←→:Fine\n+/-:Speed Tab:Sin/Cos Q:Quit"))

	statsView := statsStyle.Render(sb.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the explorer and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewExplorer())
	_, err := p.Run()
	return err
}
