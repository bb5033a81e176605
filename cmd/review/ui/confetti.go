package ui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"quickreview/internal/celebrate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiFPS       = 30
	confettiRows      = 8
	maxConfettiFrames = 3 * confettiFPS
)

var confettiGlyphs = []rune{'•', '*', '✦', '▪', '✧'}

type particle struct {
	proj  *harmonica.Projectile
	pos   harmonica.Point
	style lipgloss.Style
	glyph rune
}

// Confetti is a small particle band drawn above the wizard. Each particle
// is a harmonica projectile under terminal gravity.
type Confetti struct {
	width     int
	height    int
	particles []particle
	frames    int
	rng       *rand.Rand
}

type confettiTickMsg time.Time

// NewConfetti creates an idle confetti band.
func NewConfetti(seed uint64) *Confetti {
	return &Confetti{
		width:  60,
		height: confettiRows,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Resize sets the band width.
func (c *Confetti) Resize(width int) {
	if width > 0 {
		c.width = width
	}
}

// Burst launches cfg.Count particles from the origin, fanned across
// cfg.Spread degrees around straight up.
func (c *Confetti) Burst(cfg celebrate.Config) {
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = []string{"#ffffff"}
	}
	origin := harmonica.Point{
		X: float64(c.width) / 2,
		Y: float64(c.height) * cfg.OriginY,
	}
	spread := cfg.Spread * math.Pi / 180

	c.particles = c.particles[:0]
	c.frames = 0
	for i := 0; i < cfg.Count; i++ {
		angle := (c.rng.Float64() - 0.5) * spread
		speed := 6 + c.rng.Float64()*14
		vel := harmonica.Vector{
			X: math.Sin(angle) * speed * 2, // cells are about twice as tall as wide
			Y: -math.Cos(angle) * speed,
		}
		c.particles = append(c.particles, particle{
			proj:  harmonica.NewProjectile(harmonica.FPS(confettiFPS), origin, vel, harmonica.TerminalGravity),
			pos:   origin,
			style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)])),
			glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
		})
	}
}

// Active reports whether any particle is still in flight.
func (c *Confetti) Active() bool {
	return len(c.particles) > 0
}

// Step advances every particle by one frame and drops those that fell
// out of the band.
func (c *Confetti) Step() {
	c.frames++
	if c.frames >= maxConfettiFrames {
		c.particles = c.particles[:0]
		return
	}
	live := c.particles[:0]
	for _, p := range c.particles {
		p.pos = p.proj.Update()
		if p.pos.Y >= float64(c.height) || p.pos.X < -float64(c.width) || p.pos.X > 2*float64(c.width) {
			continue
		}
		live = append(live, p)
	}
	c.particles = live
}

// View draws the band. It is empty when idle.
func (c *Confetti) View() string {
	if !c.Active() {
		return ""
	}
	grid := make([][]string, c.height)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		x, y := int(p.pos.X), int(p.pos.Y)
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		grid[y][x] = p.style.Render(string(p.glyph))
	}
	lines := make([]string, c.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func confettiTick() tea.Cmd {
	return tea.Tick(time.Second/confettiFPS, func(t time.Time) tea.Msg {
		return confettiTickMsg(t)
	})
}
