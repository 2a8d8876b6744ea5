package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clicksnitch/internal/gauge"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

// Region is one independently drawable part of the gauge.
type Region struct {
	Text  string
	Class string
}

// GaugeRegions selects which parts of the gauge exist. A nil region is not
// drawn and ignores updates.
type GaugeRegions struct {
	Circle *Region
	Symbol *Region
	Label  *Region
}

// AllRegions returns a full set of gauge regions.
func AllRegions() GaugeRegions {
	return GaugeRegions{Circle: &Region{}, Symbol: &Region{Text: "--"}, Label: &Region{}}
}

// Gauge is the circular scan indicator with its status line.
type Gauge struct {
	regions GaugeRegions
	theme   theme.Theme
	styles  theme.Styles
}

// NewGauge creates a gauge drawing the given regions.
func NewGauge(t theme.Theme, s theme.Styles, r GaugeRegions) *Gauge {
	return &Gauge{regions: r, theme: t, styles: s}
}

// SetTheme swaps the colors used for drawing.
func (g *Gauge) SetTheme(t theme.Theme, s theme.Styles) {
	g.theme = t
	g.styles = s
}

// RenderGauge overwrites every present region with st.
func (g *Gauge) RenderGauge(st gauge.State) {
	if g.regions.Circle != nil {
		g.regions.Circle.Class = st.Class
	}
	if g.regions.Symbol != nil {
		g.regions.Symbol.Text = st.Symbol
	}
	if g.regions.Label != nil {
		g.regions.Label.Text = st.StatusText()
	}
}

// Class returns the circle's current style class.
func (g *Gauge) Class() string {
	if g.regions.Circle == nil {
		return ""
	}
	return g.regions.Circle.Class
}

// Symbol returns the symbol currently drawn in the circle.
func (g *Gauge) Symbol() string {
	if g.regions.Symbol == nil {
		return ""
	}
	return g.regions.Symbol.Text
}

// Label returns the current status line.
func (g *Gauge) Label() string {
	if g.regions.Label == nil {
		return ""
	}
	return g.regions.Label.Text
}

// View renders the gauge.
func (g *Gauge) View() string {
	var parts []string

	if g.regions.Circle != nil {
		color := g.theme.ClassColor(g.regions.Circle.Class)
		circle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Foreground(color).
			Bold(true).
			Width(9).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center).
			Render(g.Symbol())
		parts = append(parts, circle)
	} else if g.regions.Symbol != nil {
		parts = append(parts, g.styles.Bold.Render(g.Symbol()))
	}

	if g.regions.Label != nil {
		style := g.styles.Bold
		if g.regions.Circle != nil && g.regions.Circle.Class != gauge.ClassNone {
			style = style.Foreground(g.theme.ClassColor(g.regions.Circle.Class))
		}
		parts = append(parts, style.Render(g.regions.Label.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
