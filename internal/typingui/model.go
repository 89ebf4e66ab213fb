// Package typingui provides the Bubble Tea code typing interface.
package typingui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/drills/internal/bank"
	"github.com/verte-zerg/drills/internal/model"
	"github.com/verte-zerg/drills/internal/schedule"
	"github.com/verte-zerg/drills/internal/stats"
	"github.com/verte-zerg/drills/internal/typing"
)

// RefreshInterval is how often the live WPM is redrawn mid-round.
const RefreshInterval = 500 * time.Millisecond

type taskMsg struct {
	task schedule.Task
}

type keyMap struct {
	Retry  key.Binding
	Next   key.Binding
	Indent key.Binding
	Undo   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Indent, k.Undo, k.Next}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Retry}}
}

func newKeyMap() keyMap {
	return keyMap{
		Retry:  key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "try again")),
		Next:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next snippet")),
		Indent: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Undo:   key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "delete")),
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	langStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Background(lipgloss.Color("#3A1214"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	codeBoxStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

var syntaxStyles = map[typing.TokenKind]lipgloss.Style{
	typing.TokenDefault:     lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0")),
	typing.TokenKeyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD")),
	typing.TokenFunction:    lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
	typing.TokenString:      lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")),
	typing.TokenNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("#D19A66")),
	typing.TokenOperator:    lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2")),
	typing.TokenBracket:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
	typing.TokenPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	typing.TokenComment:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370")),
	typing.TokenSpecial:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config  model.TypingConfig
	picker  *bank.Picker
	pool    []model.Snippet
	used    map[string]struct{}
	session *stats.Session
	now     func() time.Time

	snippet  model.Snippet
	engine   *typing.Engine
	kinds    []typing.TokenKind
	refresh  schedule.Slot
	recorded bool

	errMsg string

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a typing model over the snippets matching cfg.
func NewModel(cfg model.TypingConfig, snippets []model.Snippet, picker *bank.Picker, session *stats.Session) (*Model, error) {
	pool := bank.FilterSnippets(snippets, cfg.Category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no snippets in category %q", cfg.Category)
	}
	m := &Model{
		config:  cfg,
		picker:  picker,
		pool:    pool,
		used:    map[string]struct{}{},
		session: session,
		now:     time.Now,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	if err := m.nextSnippet(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close cancels the pending refresh.
func (m *Model) Close() {
	m.refresh.Cancel()
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
		if !m.refresh.Fire(msg.task) || m.engine.Complete() {
			return m, nil
		}
		return m, taskCmd(m.refresh.Arm(schedule.KindRefresh, RefreshInterval))
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Next) {
		m.refresh.Cancel()
		if err := m.nextSnippet(); err != nil {
			m.errMsg = fmt.Sprintf("failed to load next snippet: %v", err)
		}
		return nil
	}
	if m.engine.Complete() {
		if key.Matches(msg, m.keys.Retry) {
			m.restart()
		}
		return nil
	}
	wasStarted := m.engine.Started()
	now := m.now()
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.engine.Backspace()
	case tea.KeyEnter:
		m.engine.Enter(now)
	case tea.KeyTab:
		m.engine.Tab(now)
	case tea.KeySpace:
		m.engine.Type(' ', now)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.engine.Type(r, now)
		}
	default:
		return nil
	}
	if m.engine.Complete() {
		m.finishRound()
		return nil
	}
	if !wasStarted && m.engine.Started() {
		return taskCmd(m.refresh.Arm(schedule.KindRefresh, RefreshInterval))
	}
	return nil
}

// nextSnippet switches to an unseen snippet. The current round is left
// untouched when the new one cannot be built.
func (m *Model) nextSnippet() error {
	snippet, ok := bank.Pick(m.picker, m.pool, bank.SnippetID, m.used)
	if !ok {
		return fmt.Errorf("no snippets available")
	}
	engine, err := typing.New(snippet.Code, m.config.AutoIndent)
	if err != nil {
		return fmt.Errorf("snippet %s: %w", snippet.ID, err)
	}
	m.used[snippet.ID] = struct{}{}
	m.snippet = snippet
	m.kinds = typing.Classify([]rune(snippet.Code))
	m.engine = engine
	m.recorded = false
	m.errMsg = ""
	return nil
}

func (m *Model) restart() {
	m.refresh.Cancel()
	engine, err := typing.New(m.snippet.Code, m.config.AutoIndent)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to restart snippet: %v", err)
		return
	}
	m.engine = engine
	m.recorded = false
	m.errMsg = ""
}

func (m *Model) finishRound() {
	m.refresh.Cancel()
	if m.recorded {
		return
	}
	m.recorded = true
	acc, _ := m.engine.Accuracy()
	if m.session != nil {
		m.session.RecordTyping(m.engine.WPM(m.now()), acc)
	}
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
	header := titleStyle.Render(m.snippet.Title) + "  " + langStyle.Render(strings.ToUpper(m.snippet.Language))
	cursorIndex := -1
	if !m.engine.Complete() {
		cursorIndex = m.engine.Typed()
	}
	styled := buildStyledRunes(m.engine.Target(), m.engine.Input(), m.kinds, cursorIndex)
	codeWidth := 0
	if m.width > 0 {
		codeWidth = int(float64(m.width)*0.80) - 4
		if codeWidth < 1 {
			codeWidth = 1
		}
	}
	code := codeBoxStyle.Render(wrapStyledRunes(styled, codeWidth))

	parts := []string{header, m.renderStats(), code}
	if m.engine.Complete() {
		parts = append(parts, m.renderComplete())
	} else if !m.engine.Started() {
		parts = append(parts, footerStyle.Render("Start typing. Enter and Tab fill in indentation."))
	}
	parts = append(parts, m.renderFooter())
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	parts = append(parts, m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderStats() string {
	acc, ok := m.engine.Accuracy()
	accText := "100%"
	if ok {
		accText = fmt.Sprintf("%d%%", acc)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("WPM", fmt.Sprintf("%d", m.engine.WPM(m.now()))),
		statCard("Accuracy", accText),
		statCard("Progress", fmt.Sprintf("%d/%d", m.engine.Typed(), m.engine.Len())),
	)
}

func statCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func (m *Model) renderComplete() string {
	acc, _ := m.engine.Accuracy()
	lines := []string{
		doneStyle.Render("Complete!"),
		fmt.Sprintf("%d WPM · %d%% accuracy · %d errors · %d characters",
			m.engine.WPM(m.now()), acc, m.engine.Errors(), m.engine.Len()),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.session == nil || m.session.TypingRounds == 0 {
		return ""
	}
	footer := fmt.Sprintf("Session %d rounds · avg %d WPM · %d%%",
		m.session.TypingRounds, m.session.AvgWPM(), m.session.AvgAccuracy())
	if len(m.session.WPMHistory) > 1 {
		footer += "  " + stats.Sparkline(m.session.WPMHistory)
	}
	return footerStyle.Render(footer)
}
