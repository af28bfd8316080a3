package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
)

// Model is the Bubble Tea model for the scorer's desk
type Model struct {
	session *scorer.Session
	logger  *log.Logger
	theme   Theme

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	matchLog    []string
	scoreboard  string
	boardStale  bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// Options configures a Model
type Options struct {
	Theme    string
	TestMode bool
}

// NewModel creates a model driving session
func NewModel(session *scorer.Session, logger *log.Logger, opts Options) *Model {
	theme := ThemeByName(opts.Theme)

	// Sized properly when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "add <name>, pins (0-10, X, /, -), roll X 7/ 9-, new, quit"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Focus).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		theme:       theme,
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
		testMode:    opts.TestMode,
	}

	match := session.Match()
	match.Subscribe(m.markStale)
	match.SubscribeEvents(bowling.SubscriberFunc(m.onMatchEvent))
	for _, player := range match.Players() {
		m.watchFrames(player)
	}
	m.markStale()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.Submit("quit") {
				m.quitting = true
				return m, tea.Quit
			}
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line != "" && m.Submit(line) {
					m.quitting = true
					return m, tea.Quit
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit runs one line of input through the session and logs the outcome.
// It reports whether the user asked to quit.
func (m *Model) Submit(line string) bool {
	m.logger.Debug("Command", "input", line)

	res, err := m.session.Execute(line)
	if err != nil {
		m.AddLogEntry(m.theme.Error.Render(describeError(res.Command, err)))
	} else if res.Message != "" {
		m.AddLogEntry(res.Message)
	}
	if res.Winner != "" {
		m.AddLogEntry(m.theme.Success.Render(res.Winner))
	}
	return res.Quit
}

// describeError turns session errors into a line for the log pane
func describeError(command string, err error) string {
	switch {
	case errors.Is(err, scorer.ErrMatchInProgress) && command == "quit":
		return "A match is in progress, type quit! to leave it"
	case errors.Is(err, scorer.ErrMatchInProgress):
		return "A match is in progress, type new! to discard it"
	case errors.Is(err, scorer.ErrRosterLocked):
		return "Players cannot join once bowling has started"
	case errors.Is(err, scorer.ErrNameTooLong):
		return fmt.Sprintf("Names can be at most %d characters", scorer.MaxNameLength)
	default:
		return err.Error()
	}
}

func (m *Model) onMatchEvent(e bowling.Event) {
	switch ev := e.(type) {
	case bowling.LeadersChangedEvent:
		if len(ev.Leaders) == 1 {
			m.AddLogEntry(fmt.Sprintf("%s leads with %d", ev.Leaders[0], ev.Score))
		} else {
			m.AddLogEntry(fmt.Sprintf("%s share the lead on %d", strings.Join(ev.Leaders, ", "), ev.Score))
		}
	case bowling.PlayerAddedEvent:
		m.watchFrames(ev.Player)
	case bowling.GameFinishedEvent:
		m.AddLogEntry(m.theme.Warning.Render(fmt.Sprintf("%s finishes on %d", ev.Player, ev.Total)))
	case bowling.MatchClearedEvent:
		m.ClearLog()
	}
}

// watchFrames marks the scoreboard stale whenever one of the player's frames
// changes
func (m *Model) watchFrames(player string) {
	for i := 0; i < bowling.NumberOfFrames; i++ {
		if err := m.session.Match().SubscribeFrame(player, i, m.markStale); err != nil {
			m.logger.Warn("Cannot watch frames", "player", player, "error", err)
			return
		}
	}
}

func (m *Model) markStale() {
	m.boardStale = true
}

// Scoreboard returns the scoreboard, rendering it again if the match has
// changed since it was last drawn
func (m *Model) Scoreboard() string {
	if m.boardStale {
		m.scoreboard = RenderScoreboard(m.session.Match(), m.theme)
		m.boardStale = false
	}
	return m.scoreboard
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(max(m.width-2, 1))
	boardPane := boardStyle.Render(m.Scoreboard())

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(max(m.width-2, 1))
	if m.focusedPane == 1 {
		inputStyle = inputStyle.BorderForeground(m.theme.Focus)
	}
	inputPane := inputStyle.Render(inputContent)

	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-lipgloss.Height(boardPane)-inputHeight-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.matchLog, "\n"))
	if !m.initialized && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(m.theme.Focus)
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, boardPane, logPane, inputPane)
}

func (m *Model) renderInputPane() string {
	var content strings.Builder

	match := m.session.Match()
	switch player, ok := match.CurrentPlayer(); {
	case match.IsFinished():
		content.WriteString(m.theme.Success.Render("Match finished, type new for another"))
	case ok && m.session.Begun():
		content.WriteString(m.theme.Current.Render(player + " to bowl"))
	default:
		content.WriteString(m.theme.Info.Render(fmt.Sprintf("Add up to %d players, then bowl", bowling.MaxPlayers)))
	}
	content.WriteString("\n")
	content.WriteString(m.input.View())
	content.WriteString("\n")

	help := "Tab to scroll log • Enter to submit • Esc to quit"
	if m.focusedPane == 0 {
		help = "Log focused: ↑↓ scroll, Home/End, Tab to input"
	}
	content.WriteString(m.theme.Info.Render(help))
	return content.String()
}

// AddLogEntry appends a line to the match log
func (m *Model) AddLogEntry(entry string) {
	m.matchLog = append(m.matchLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.matchLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog empties the match log
func (m *Model) ClearLog() {
	m.matchLog = nil
	m.capturedLog = nil
	m.logViewport.SetContent("")
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the model is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// Run starts the interactive program and blocks until the user quits
func Run(session *scorer.Session, logger *log.Logger, opts Options) error {
	p := tea.NewProgram(NewModel(session, logger, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
