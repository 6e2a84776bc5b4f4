package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PixPMusic/gopher-regions/internal/activation"
	"github.com/PixPMusic/gopher-regions/internal/region"
)

const barWidth = 24

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7CFC00"))
)

// eventMsg carries one raw hardware message into Update
type eventMsg struct {
	raw []byte
	at  time.Time
}

type tickMsg time.Time

// model applies messages and evaluates regions on the bubbletea goroutine,
// so the store has exactly one writer.
type model struct {
	regions  []region.Region
	engine   *activation.Engine
	port     string
	interval time.Duration
	events   int
	last     string
	quitting bool
}

func newModel(regions []region.Region, engine *activation.Engine, port string, frameRate int) model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return model{
		regions:  regions,
		engine:   engine,
		port:     port,
		interval: time.Second / time.Duration(frameRate),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "c":
			m.engine.Reset()
			m.last = "cleared"
		}

	case eventMsg:
		m.engine.OnEvent(msg.raw, msg.at)
		m.events++
		m.last = fmt.Sprintf("% X", msg.raw)

	case tickMsg:
		return m, m.tick()
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	port := m.port
	if port == "" {
		port = "(no input)"
	}
	b.WriteString(titleStyle.Render("regionmon") + dimStyle.Render("  "+port) + "\n\n")

	snap := m.engine.Snapshot()
	results := activation.EvaluateAll(m.regions, snap)

	if len(m.regions) == 0 {
		b.WriteString(dimStyle.Render("no regions configured") + "\n")
	}
	for i, r := range m.regions {
		b.WriteString(regionLine(r, results[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("sounding: %s", soundingList(snap))) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("events: %d  dropped: %d  last: %s", m.events, m.engine.Dropped(), m.last)) + "\n")
	b.WriteString(dimStyle.Render("c clear  q quit") + "\n")
	return b.String()
}

func regionLine(r region.Region, res activation.Result) string {
	name := r.Name
	if name == "" && len(r.ID) >= 8 {
		name = r.ID[:8]
	} else if name == "" {
		name = r.ID
	}

	ch := "omni"
	if r.Channel != region.OmniChannel {
		ch = fmt.Sprintf("ch%d", r.Channel)
	}
	trigger := fmt.Sprintf("%-4s %3d-%-3d", ch, r.NoteLow, r.NoteHigh)

	filled := int(res.Intensity*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("·", barWidth-filled))

	state := dimStyle.Render("  off")
	if res.Active {
		state = activeStyle.Render(fmt.Sprintf("%5.2f", res.Intensity))
	}
	if !r.Valid() {
		state += dimStyle.Render(" (invalid)")
	}

	return fmt.Sprintf("%-10s %s %s %s", name, trigger, bar, state)
}

func soundingList(snap activation.Snapshot) string {
	keys := snap.Keys()
	if len(keys) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d:%d", k.Channel, k.Note))
	}
	return strings.Join(parts, " ")
}
