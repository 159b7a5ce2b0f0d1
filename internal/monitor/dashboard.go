// Package monitor renders a live terminal dashboard of the running
// simulation's conservation diagnostics, per SPEC_FULL.md §4.11. It is
// grounded on the teacher's internal/viz.Model (san-kum-dynsim): the
// same bubbletea tick-driven Update/View loop, lipgloss style palette,
// and asciigraph sparkline, scaled down to the single metric pair this
// domain cares about instead of a physics canvas.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 200

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// Update is one step's conservation snapshot, reported by the driver
// loop once per completed step (spec.md §4.8, §6).
type Update struct {
	Step  int
	Etime float64
	DMass float64
	DTE   float64
}

type tickMsg time.Time

type updateMsg Update

// Dashboard is a bubbletea program fed by Notify from the driver loop.
// The zero value is not usable; construct with New.
type Dashboard struct {
	scenario string
	program  *tea.Program
	updates  chan Update
}

// New returns a Dashboard labeled with the given scenario name.
func New(scenario string) *Dashboard {
	return &Dashboard{
		scenario: scenario,
		updates:  make(chan Update, 64),
	}
}

// Notify reports one step's diagnostics. It never blocks: if the
// dashboard isn't keeping up (or Run was never called), the update is
// dropped rather than stalling the simulation.
func (d *Dashboard) Notify(u Update) {
	select {
	case d.updates <- u:
	default:
	}
}

// Run drives the dashboard until ctx is canceled or the user quits
// with q/ctrl+c. Callers that can't attach a TTY (CI, piped output)
// should skip calling Run entirely; Notify remains safe to call either
// way.
func (d *Dashboard) Run(ctx context.Context) error {
	m := model{scenario: d.scenario, dMassHist: make([]float64, 0, historyCapacity), dTEHist: make([]float64, 0, historyCapacity)}
	d.program = tea.NewProgram(m)

	go func() {
		for {
			select {
			case <-ctx.Done():
				d.program.Quit()
				return
			case u, ok := <-d.updates:
				if !ok {
					return
				}
				d.program.Send(updateMsg(u))
			}
		}
	}()

	_, err := d.program.Run()
	return err
}

type model struct {
	scenario  string
	step      int
	etime     float64
	dMass     float64
	dTE       float64
	dMassHist []float64
	dTEHist   []float64
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case updateMsg:
		m.step = msg.Step
		m.etime = msg.Etime
		m.dMass = msg.DMass
		m.dTE = msg.DTE
		m.dMassHist = appendCapped(m.dMassHist, m.dMass, historyCapacity)
		m.dTEHist = appendCapped(m.dTEHist, m.dTE, historyCapacity)
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func appendCapped(hist []float64, v float64, limit int) []float64 {
	hist = append(hist, v)
	if len(hist) > limit {
		hist = hist[len(hist)-limit:]
	}
	return hist
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.step)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", m.etime)) + "\n")
	s.WriteString(labelStyle.Render("d_mass") + valueStyle.Render(fmt.Sprintf("%.3e", m.dMass)) + "\n")
	s.WriteString(labelStyle.Render("d_te") + valueStyle.Render(fmt.Sprintf("%.3e", m.dTE)) + "\n")

	if len(m.dMassHist) > 1 {
		chart := asciigraph.Plot(m.dMassHist, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("d_mass"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.dTEHist) > 1 {
		chart := asciigraph.Plot(m.dTEHist, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("d_te"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("q: quit"))
	return s.String()
}
