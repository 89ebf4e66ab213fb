// Package mathsui provides the Bubble Tea fill-in-the-blank maths interface.
package mathsui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/drills/internal/bank"
	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/round"
	"github.com/verte-zerg/drills/internal/schedule"
	"github.com/verte-zerg/drills/internal/stats"
)

type taskMsg struct {
	task schedule.Task
}

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Check key.Binding
	Undo  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Check, k.Undo}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev slot")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next slot")),
		Check: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		Undo:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "undo")),
	}
}

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	equationStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	slotStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	activeSlotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	optionStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	usedOptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#2E2E2E"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	lowTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea maths UI.
type Model struct {
	ctrl   *round.Controller
	digits digitBuffer

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a maths model over the equations matching cfg.
func NewModel(cfg model.MathsConfig, equations []model.Equation, picker *bank.Picker, session *stats.Session) (*Model, error) {
	var rec round.Recorder
	if session != nil {
		rec = session
	}
	ctrl, err := round.New(equations, picker, cfg, rec)
	if err != nil {
		return nil, err
	}
	return &Model{
		ctrl: ctrl,
		keys: newKeyMap(),
		help: help.New(),
	}, nil
}

// Init implements tea.Model and loads the first puzzle.
func (m *Model) Init() tea.Cmd {
	return taskCmd(m.ctrl.Start())
}

// Close cancels the pending tick or feedback delay.
func (m *Model) Close() {
	m.ctrl.Stop()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case taskMsg:
		next := m.ctrl.Fire(msg.task)
		if m.ctrl.State() != round.StateActive {
			m.digits.reset()
		}
		return m, taskCmd(next)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.State() != round.StateActive {
		return nil
	}
	board := m.ctrl.Board()
	options := m.ctrl.Equation().Options
	switch {
	case key.Matches(msg, m.keys.Left):
		m.digits.reset()
		m.ctrl.Move(-1)
	case key.Matches(msg, m.keys.Right):
		m.digits.reset()
		m.ctrl.Move(1)
	case key.Matches(msg, m.keys.Undo):
		if !m.digits.trim() {
			m.ctrl.Undo()
		}
	case key.Matches(msg, m.keys.Check):
		if v, ok := m.digits.flush(board, options); ok {
			m.ctrl.Assign(v)
			return nil
		}
		next, _ := m.ctrl.Check()
		return taskCmd(next)
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				continue
			}
			if v, ok := m.digits.push(board, options, r); ok {
				m.ctrl.Assign(v)
			}
		}
	}
	return nil
}

func taskCmd(t schedule.Task) tea.Cmd {
	if !t.Valid() {
		return nil
	}
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return taskMsg{task: t}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.ctrl.Board() == nil {
		return mutedStyle.Render("Loading puzzle...")
	}
	eq := m.ctrl.Equation()
	header := titleStyle.Render(eq.Title) + "  " +
		mutedStyle.Render(fmt.Sprintf("%s · %s", eq.Category, eq.Difficulty))
	parts := []string{
		header,
		m.renderCards(),
		"",
		equationStyle.Render(m.renderEquation()),
		"",
		m.renderOptions(),
		m.renderStatus(),
		m.help.View(m.keys),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderCards() string {
	remaining := fmt.Sprintf("%ds", m.ctrl.Remaining())
	if m.ctrl.Remaining() <= 5 {
		remaining = lowTimeStyle.Render(remaining)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Time", remaining),
		metricCard("Score", strconv.Itoa(m.ctrl.Score())),
		metricCard("Streak", strconv.Itoa(m.ctrl.Streak())),
	)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// renderEquation replaces each blank in the template with its slot box.
func (m *Model) renderEquation() string {
	board := m.ctrl.Board()
	pieces := strings.Split(m.ctrl.Equation().Template, model.Blank)
	var b strings.Builder
	for i, piece := range pieces {
		b.WriteString(piece)
		if i == len(pieces)-1 {
			break
		}
		b.WriteString(m.renderSlot(i, board.Active() == i))
	}
	return b.String()
}

func (m *Model) renderSlot(i int, active bool) string {
	text := "   "
	if v, ok := m.ctrl.Board().Slot(i); ok {
		text = fmt.Sprintf("%3d", v)
	} else if active && m.digits.digits != "" {
		text = fmt.Sprintf("%3s", m.digits.digits)
	}
	box := "[" + text + "]"
	if active && m.ctrl.State() == round.StateActive {
		return activeSlotStyle.Render(box)
	}
	return slotStyle.Render(box)
}

// renderOptions draws one box per option instance; instances already placed
// are dimmed, counting duplicates separately.
func (m *Model) renderOptions() string {
	board := m.ctrl.Board()
	seen := map[int]int{}
	boxes := make([]string, 0, len(m.ctrl.Equation().Options))
	for _, v := range m.ctrl.Equation().Options {
		seen[v]++
		label := strconv.Itoa(v)
		if seen[v] <= board.InUse(v) {
			boxes = append(boxes, usedOptionStyle.Render(label))
			continue
		}
		boxes = append(boxes, optionStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *Model) renderStatus() string {
	switch m.ctrl.State() {
	case round.StateCorrect:
		return correctStyle.Render("Correct!")
	case round.StateIncorrect:
		if m.ctrl.TimedOut() {
			return wrongStyle.Render("Time's up!")
		}
		return wrongStyle.Render("Incorrect")
	default:
		if m.ctrl.Board().IsComplete() {
			return mutedStyle.Render("Press enter to check.")
		}
		return mutedStyle.Render("Type a number to fill the highlighted slot.")
	}
}
