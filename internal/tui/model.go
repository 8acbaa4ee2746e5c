// Package tui renders the psychMASTER page and chat panel in a terminal.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/panel"
	"github.com/psychmaster/psychmaster/internal/site"
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	composerRows  = 3
	// nav, chat header, banner, typing line, help
	chromeRows = 5
)

// eventMsg carries a panel event back into the update loop.
type eventMsg struct{ ev panel.Event }

// adapt runs a panel command as a bubbletea command.
func adapt(cmd panel.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg { return eventMsg{ev: cmd()} }
}

// Model is the root bubbletea model.
type Model struct {
	panel *panel.Panel
	guard *pageGuard

	sections []site.Section
	layout   site.Layout

	page     viewport.Model
	messages viewport.Model
	composer textarea.Model
	spinner  spinner.Model
	styles   Styles

	width  int
	height int
	shown  int
}

// New builds the model over source. Extra panel options are applied after
// the page scroll guard.
func New(source panel.ResponseSource, opts ...panel.Option) Model {
	guard := &pageGuard{}
	opts = append([]panel.Option{panel.WithScrollGuard(guard)}, opts...)

	ta := textarea.New()
	ta.Placeholder = "Connecting..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4096
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles()
	sp.Style = styles.Spinner

	m := Model{
		panel:    panel.New(source, opts...),
		guard:    guard,
		sections: site.Sections(),
		page:     viewport.New(defaultWidth, 1),
		messages: viewport.New(defaultWidth, 1),
		composer: ta,
		spinner:  sp,
		styles:   styles,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Panel exposes the underlying chat panel.
func (m Model) Panel() *panel.Panel { return m.panel }

func (m Model) mount() tea.Cmd { return adapt(m.panel.Mount()) }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.mount(), m.spinner.Tick, textarea.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", "alt+enter":
			m.panel.SetInput(m.composer.Value())
			cmds = append(cmds, adapt(m.panel.HandleEnter(key == "alt+enter")))
			m.composer.SetValue(m.panel.Input())
		case "pgup":
			m.scrollPage(m.page.YOffset - m.page.Height/2)
		case "pgdown":
			m.scrollPage(m.page.YOffset + m.page.Height/2)
		default:
			if target, ok := navTarget(key); ok {
				site.Navigate(m.layout, target, m.scrollPage)
				break
			}
			var cmd tea.Cmd
			m.composer, cmd = m.composer.Update(msg)
			m.panel.SetInput(m.composer.Value())
			cmds = append(cmds, cmd)
		}

	case eventMsg:
		m.panel.Handle(msg.ev)
		if err := m.panel.Banner(); err != nil {
			log.Warn().Err(err).Str("state", m.panel.State().String()).Msg("chat panel error")
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncMessages()
	m.syncComposer()
	m.pinPage()
	return m, tea.Batch(cmds...)
}

func navTarget(key string) (site.Key, bool) {
	for _, item := range site.Nav {
		if item.Shortcut == key {
			return item.Key, true
		}
	}
	return "", false
}

// scrollPage moves the page unless a send holds it.
func (m *Model) scrollPage(offset int) {
	if m.guard.Held() {
		return
	}
	m.page.SetYOffset(offset)
}

// pinPage restores the recorded offset while held and records it otherwise.
func (m *Model) pinPage() {
	if m.guard.Held() {
		m.page.SetYOffset(m.guard.offset)
		return
	}
	m.guard.offset = m.page.YOffset
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height

	free := height - chromeRows - composerRows
	if free < 2 {
		free = 2
	}
	pageRows := free * 2 / 5
	if pageRows < 1 {
		pageRows = 1
	}

	m.page.Width, m.page.Height = width, pageRows
	m.messages.Width, m.messages.Height = width, free-pageRows
	m.composer.SetWidth(width)
	m.composer.SetHeight(composerRows)

	m.renderPage()
	m.shown = -1
	m.syncMessages()
}

func (m *Model) renderPage() {
	bodyWidth := max(m.width-2, 10)
	blocks := make([]site.Block, 0, len(m.sections))
	for _, s := range m.sections {
		body := m.styles.Body.Width(bodyWidth).Render(strings.Join(s.Lines, "\n"))
		blocks = append(blocks, site.Block{Key: s.Key, Text: m.styles.Title.Render(s.Title) + "\n" + body})
	}
	m.layout = site.NewLayout(blocks)
	m.page.SetContent(m.layout.Content())
}

// syncMessages re-renders the conversation when it grew and keeps the
// newest message in view.
func (m *Model) syncMessages() {
	msgs := m.panel.Messages()
	if len(msgs) == m.shown {
		return
	}
	m.shown = len(msgs)

	width := max(m.width-4, 10)
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg, width))
	}
	m.messages.SetContent(strings.Join(parts, "\n\n"))
	m.messages.GotoBottom()
}

func (m Model) renderMessage(msg panel.Message, width int) string {
	who, style := "You", m.styles.User
	switch {
	case msg.IsError:
		who, style = "psychMASTER", m.styles.Failure
	case msg.IsCrisis:
		who, style = "psychMASTER", m.styles.Crisis
	case msg.IsBot:
		who, style = "psychMASTER", m.styles.Bot
	}
	meta := m.styles.Meta.Render(who + " · " + msg.Timestamp.Format("15:04"))
	return meta + "\n" + style.Width(width).Render(msg.Text)
}

func (m *Model) syncComposer() {
	switch {
	case m.panel.SendEnabled():
		m.composer.Placeholder = "Share what's on your mind..."
	case m.panel.State() == panel.ReadyWithoutSession:
		m.composer.Placeholder = "Chat is unavailable right now"
	default:
		m.composer.Placeholder = "Connecting..."
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.navBar())
	b.WriteString("\n")
	b.WriteString(m.page.View())
	b.WriteString("\n")
	b.WriteString(m.styles.ChatHeader.Width(m.width).Render("psychMASTER chat"))
	b.WriteString("\n")
	b.WriteString(m.messages.View())
	b.WriteString("\n")
	b.WriteString(m.bannerLine())
	b.WriteString("\n")
	if m.panel.Typing() {
		b.WriteString(m.spinner.View() + m.styles.Typing.Render(" psychMASTER is typing..."))
	}
	b.WriteString("\n")
	b.WriteString(m.composer.View())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) navBar() string {
	items := make([]string, 0, len(site.Nav))
	for _, item := range site.Nav {
		items = append(items, m.styles.NavItem.Render(item.Label+" ("+item.Shortcut+")"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{m.styles.Nav.Render("psychMASTER")}, items...)...)
}

func (m Model) bannerLine() string {
	err := m.panel.Banner()
	if err == nil {
		return ""
	}
	var initErr *panel.SessionInitError
	if errors.As(err, &initErr) {
		return m.styles.Banner.Render("Could not start a chat session. Sending is disabled.")
	}
	return m.styles.Banner.Render("Your last message could not be delivered.")
}

func (m Model) helpLine() string {
	help := "enter send · alt+enter newline · pgup/pgdown scroll page · esc quit"
	if !m.panel.SendEnabled() {
		help = "esc quit"
	}
	return m.styles.Help.Render(help)
}
