// Package shell provides the Bubble Tea menu that switches between drills.
package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/store"
)

// View is a drill hosted by the shell. Close must cancel pending work.
type View interface {
	tea.Model
	Close()
}

// Factory builds a fresh view.
type Factory func() (View, error)

// FlagStore persists the intro-seen flag.
type FlagStore interface {
	SetFlag(ctx context.Context, key string, value bool) error
}

type tab struct {
	id    string
	label string
}

var tabs = []tab{
	{id: model.ViewMaths, label: "F1 Maths"},
	{id: model.ViewTyping, label: "F2 Typing"},
}

type keyMap struct {
	Maths  key.Binding
	Typing key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Maths:  key.NewBinding(key.WithKeys("f1")),
		Typing: key.NewBinding(key.WithKeys("f2")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+t")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea shell UI.
type Model struct {
	factories map[string]Factory
	flags     FlagStore

	active  string
	current View

	showIntro bool
	errMsg    string

	keys   keyMap
	width  int
	height int
}

// NewModel builds the shell and its starting view. An unknown start falls
// back to the first tab.
func NewModel(factories map[string]Factory, start string, introSeen bool, flags FlagStore) (*Model, error) {
	for _, t := range tabs {
		if factories[t.id] == nil {
			return nil, fmt.Errorf("missing view %q", t.id)
		}
	}
	if factories[start] == nil {
		start = tabs[0].id
	}
	view, err := factories[start]()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s view: %w", start, err)
	}
	return &Model{
		factories: factories,
		flags:     flags,
		active:    start,
		current:   view,
		showIntro: !introSeen,
		keys:      newKeyMap(),
	}, nil
}

// Active returns the identifier of the visible view.
func (m *Model) Active() string {
	return m.active
}

// Close tears down the visible view.
func (m *Model) Close() {
	if m.current != nil {
		m.current.Close()
	}
}

// Init implements tea.Model. The starting view is initialised once the
// intro is dismissed so its timers only run while it is visible.
func (m *Model) Init() tea.Cmd {
	if m.showIntro {
		return nil
	}
	return m.current.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.forward(m.bodySize())
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}
		if m.showIntro {
			return m, m.dismissIntro()
		}
		switch {
		case key.Matches(msg, m.keys.Maths):
			return m, m.switchTo(model.ViewMaths)
		case key.Matches(msg, m.keys.Typing):
			return m, m.switchTo(model.ViewTyping)
		case key.Matches(msg, m.keys.Toggle):
			return m, m.switchTo(m.otherView())
		}
		return m, m.forward(msg)
	default:
		if m.showIntro {
			return m, nil
		}
		return m, m.forward(msg)
	}
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	next, cmd := m.current.Update(msg)
	if v, ok := next.(View); ok {
		m.current = v
	}
	return cmd
}

// dismissIntro hides the intro, records it as seen and starts the view.
func (m *Model) dismissIntro() tea.Cmd {
	m.showIntro = false
	if m.flags != nil {
		if err := m.flags.SetFlag(context.Background(), store.IntroSeenKey, true); err != nil {
			m.errMsg = fmt.Sprintf("failed to save intro flag: %v", err)
		}
	}
	return m.current.Init()
}

func (m *Model) otherView() string {
	for _, t := range tabs {
		if t.id != m.active {
			return t.id
		}
	}
	return m.active
}

// switchTo replaces the visible view with a fresh instance of id.
func (m *Model) switchTo(id string) tea.Cmd {
	if id == m.active {
		return nil
	}
	view, err := m.factories[id]()
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to open %s: %v", id, err)
		return nil
	}
	m.current.Close()
	m.current = view
	m.active = id
	m.errMsg = ""
	initCmd := m.current.Init()
	if m.width == 0 || m.height == 0 {
		return initCmd
	}
	return tea.Batch(initCmd, m.forward(m.bodySize()))
}

func (m *Model) bodySize() tea.WindowSizeMsg {
	_, body, _ := m.layoutHeights()
	return tea.WindowSizeMsg{Width: m.width, Height: body}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X"))
	if headerHeight < 1 {
		headerHeight = 1
	}
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showIntro {
		return m.renderIntro()
	}
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{m.renderTabs(), m.current.View(), m.renderFooter()}, "\n")
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.fit(m.renderTabs(), headerHeight),
		m.fit(m.current.View(), bodyHeight),
		m.fit(m.renderFooter(), footerHeight),
	)
}

// fit clips s to the terminal width and pads or clips it to height lines.
func (m *Model) fit(s string, height int) string {
	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Height(height).
		MaxHeight(height).
		Render(s)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.id == m.active {
			parts = append(parts, activeNavStyle.Render(t.label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Views: F1/F2  Toggle: ctrl+t  Quit: ctrl+c")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderIntro() string {
	body := []string{
		titleStyle.Render("Welcome to drills"),
		"",
		"Maths: fill the blanks with the numbers below the equation",
		"before the timer runs out. Type a number to place it, use",
		"left/right to pick a slot, backspace to undo, enter to check.",
		"",
		"Typing: type the snippet exactly. Enter and Tab fill in",
		"indentation for you. Mistakes stay counted after backspace.",
		"",
		headerStyle.Render("Press any key to start"),
	}
	width := m.width - 4
	if width > 70 {
		width = 70
	}
	if width < 40 {
		width = 40
	}
	box := modalStyle.Width(width).Render(strings.Join(body, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
