package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/engine"
	"github.com/FreddyWordingham/GOAP/internal/planner"
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Home, k.End, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev step")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next step")),
	Home: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAF5F"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF5F5F"))
)

type model struct {
	result planner.Result
	trace  engine.Trace
	goal   domain.WorldState

	cursor int // индекс выбранного шага
	offset int // первая видимая строка списка

	width  int
	height int

	help help.Model
}

// NewModel создает модель просмотра плана.
// trace должна быть получена engine.Execute для result.Actions.
func NewModel(result planner.Result, trace engine.Trace, goal domain.WorldState) model {
	return model{
		result: result,
		trace:  trace,
		goal:   goal,
		height: 24,
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.cursor--
		case key.Matches(msg, keys.Down):
			m.cursor++
		case key.Matches(msg, keys.Home):
			m.cursor = 0
		case key.Matches(msg, keys.End):
			m.cursor = len(m.result.Actions) - 1
		}
		m.clamp()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clamp()
	}

	return m, nil
}

// listHeight - сколько строк плана помещается на экране
func (m model) listHeight() int {
	// заголовок, пустая строка, помощь
	return max(m.height-4, 1)
}

func (m *model) clamp() {
	last := len(m.result.Actions) - 1
	m.cursor = max(min(m.cursor, last), 0)

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if h := m.listHeight(); m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m model) View() string {
	list := m.renderPlan()
	state := m.renderState()

	main := lipgloss.JoinHorizontal(lipgloss.Top, list, state)
	return lipgloss.JoinVertical(lipgloss.Left, main, "", m.help.View(keys))
}

func (m model) renderPlan() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("PLAN [%s]", m.result.Status)))
	b.WriteString("\n\n")

	if len(m.result.Actions) == 0 {
		b.WriteString(stepStyle.Render("(no actions)"))
		return b.String()
	}

	end := min(m.offset+m.listHeight(), len(m.result.Actions))
	for i := m.offset; i < end; i++ {
		line := fmt.Sprintf("%d > %s", i, m.result.Actions[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(stepStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	width := 28
	if m.width > 0 {
		width = max(m.width/2, 20)
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m model) renderState() string {
	current := m.trace.Initial
	title := "INITIAL"
	if len(m.trace.Steps) > 0 {
		current = m.trace.StateAt(m.cursor)
		title = fmt.Sprintf("AFTER STEP %d", m.cursor)
	}

	content := titleStyle.Render(title) + "\n" + describe(current) + "\n\n" +
		titleStyle.Render("GOAL") + "\n" + describe(m.goal) + "\n\n"

	if current.MatchesGoal(m.goal) {
		content += okStyle.Render("goal reached")
	} else {
		content += missStyle.Render(fmt.Sprintf("remaining estimate: %d\nwalks to goal cell: %d",
			planner.Heuristic(current, m.goal),
			current.PlayerPos.ChebyshevTo(m.goal.PlayerPos)))
	}

	return stateStyle.Render(content)
}

func describe(s domain.WorldState) string {
	return fmt.Sprintf("Position: %s\nWeapon:   %s\nEnemy:    %s\nWood:     %d\nBonfire:  %s",
		s.PlayerPos,
		yesNo(s.HasWeapon, "held", "none"),
		yesNo(s.EnemyAlive, "alive", "dead"),
		s.Wood,
		yesNo(s.HasBonfire, "lit", "unlit"),
	)
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

// Run показывает план в интерактивном режиме
func Run(result planner.Result, trace engine.Trace, goal domain.WorldState) error {
	p := tea.NewProgram(NewModel(result, trace, goal), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
