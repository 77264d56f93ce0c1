package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	motion "github.com/tphakala/go-motion"
)

const (
	framePeriod  = 33 * time.Millisecond
	trackWidth   = 60
	markerDamper = 0.35
	markerSpeed  = 8.0
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model bounces a marker between the edges of a track. One spring animates
// the marker position, another fades its color between the endpoints'
// accents. Both springs share the wall clock, so the demo needs no state of
// its own beyond the current targets.
type model struct {
	marker *motion.Spring
	color  *motion.Spring

	atRight  bool
	width    int
	quitting bool
}

func newModel() (*model, error) {
	marker, err := motion.NewScalarSpring(0,
		motion.WithDamper(markerDamper),
		motion.WithSpeed(markerSpeed),
	)
	if err != nil {
		return nil, err
	}

	color, err := motion.NewColorSpring(colorful.Color{R: 0.3, G: 0.7, B: 1})
	if err != nil {
		return nil, err
	}

	return &model{marker: marker, color: color, width: trackWidth}, nil
}

// retarget sends the marker to the opposite edge and shifts the color with
// it.
func (m *model) retarget() error {
	m.atRight = !m.atRight

	target := 0.0
	tint := colorful.Color{R: 0.3, G: 0.7, B: 1}
	if m.atRight {
		target = float64(m.width - 1)
		tint = colorful.Color{R: 1, G: 0.5, B: 0.2}
	}

	if err := m.marker.SetTarget(motion.Float(target)); err != nil {
		return err
	}
	return m.color.SetTarget(motion.ColorOf(tint))
}

func (m *model) Init() tea.Cmd {
	return tickCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter":
			if err := m.retarget(); err != nil {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		if w := msg.Width - 4; w > 10 && w < 200 {
			m.width = w
		}
		return m, nil

	case tickMsg:
		// Springs recompute from the wall clock on read; the tick only
		// triggers a redraw and auto-bounces once the marker settles.
		if animating, _ := m.marker.IsAnimating(0.01); !animating {
			if err := m.retarget(); err != nil {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	pos := m.marker.Position().Float()
	idx := int(pos + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= m.width {
		idx = m.width - 1
	}

	c := m.color.Position().Color()
	markerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))

	var track strings.Builder
	for i := range m.width {
		if i == idx {
			track.WriteString(markerStyle.Render("●"))
		} else {
			track.WriteString(trackStyle.Render("·"))
		}
	}

	readout := fmt.Sprintf("position %7.2f   velocity %7.2f   damper %.2f   speed %.1f",
		pos, m.marker.Velocity().Float(), m.marker.Damper(), m.marker.Speed())

	return fmt.Sprintf("\n %s\n\n %s\n\n %s\n %s\n",
		titleStyle.Render("springdemo"),
		track.String(),
		readoutStyle.Render(readout),
		helpStyle.Render("space: bounce  q: quit"))
}
