package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/psychmaster/psychmaster/internal/panel"
	"github.com/psychmaster/psychmaster/internal/site"
)

type stubSource struct {
	sessionID  string
	sessionErr error
	sendErr    error
}

func (s *stubSource) CreateSession(context.Context) (string, error) {
	return s.sessionID, s.sessionErr
}

func (s *stubSource) SendMessage(_ context.Context, text, sessionID string) (panel.Reply, error) {
	if s.sendErr != nil {
		return panel.Reply{}, s.sendErr
	}
	return panel.Reply{Text: "heard: " + text, SessionID: sessionID}, nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// run executes a panel-backed command and feeds its event back.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if ev, ok := c().(eventMsg); ok {
				m, _ = update(t, m, ev)
			}
		}
		return m
	}
	m, _ = update(t, m, msg)
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func mounted(t *testing.T, src *stubSource) Model {
	t.Helper()
	m := New(src)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return run(t, m, m.mount())
}

func TestMountAssignsSession(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1"})

	if m.Panel().SessionID() != "s-1" {
		t.Fatalf("session = %q", m.Panel().SessionID())
	}
	if !strings.Contains(m.View(), panel.Greeting[:20]) {
		t.Fatal("greeting should be rendered")
	}
}

func TestMountFailureShowsBanner(t *testing.T) {
	m := mounted(t, &stubSource{sessionErr: errors.New("down")})

	if m.Panel().State() != panel.ReadyWithoutSession {
		t.Fatalf("state = %s", m.Panel().State())
	}
	if !strings.Contains(m.View(), "Could not start a chat session") {
		t.Fatal("expected session banner")
	}

	m = typeText(t, m, "hello")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		if _, ok := cmd().(eventMsg); ok {
			t.Fatal("send should be disabled without a session")
		}
	}
	if m.composer.Value() != "hello" {
		t.Fatalf("composer lost text: %q", m.composer.Value())
	}
}

func TestEnterSendsAndClearsComposer(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1"})
	m = typeText(t, m, "I feel anxious")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.composer.Value() != "" {
		t.Fatalf("composer = %q", m.composer.Value())
	}
	if !m.Panel().Typing() {
		t.Fatal("typing indicator should show while sending")
	}
	if !strings.Contains(m.View(), "is typing") {
		t.Fatal("typing line should render")
	}

	m = run(t, m, cmd)
	msgs := m.Panel().Messages()
	if len(msgs) != 3 || msgs[2].Text != "heard: I feel anxious" {
		t.Fatalf("messages = %+v", msgs)
	}
	if !m.messages.AtBottom() {
		t.Fatal("conversation should follow the newest message")
	}
}

func TestAltEnterInsertsNewline(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1"})
	m = typeText(t, m, "line one")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if cmd != nil {
		if _, ok := cmd().(eventMsg); ok {
			t.Fatal("alt+enter should not send")
		}
	}
	if m.composer.Value() != "line one\n" {
		t.Fatalf("composer = %q", m.composer.Value())
	}
}

func TestSendFailureRendersFallback(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1", sendErr: errors.New("timeout")})
	m = typeText(t, m, "hi")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	view := m.View()
	if !strings.Contains(view, "could not be delivered") {
		t.Fatal("expected send banner")
	}
	if !strings.Contains(view, "988") {
		t.Fatal("fallback message should include crisis lines")
	}
}

func TestNavigationScrollsPage(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1"})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4"), Alt: true})
	want, ok := m.layout.Offset(site.Contact)
	if !ok {
		t.Fatal("contact section missing from layout")
	}
	if want > 0 && m.page.YOffset == 0 {
		t.Fatal("page did not move to contact")
	}
	if m.composer.Value() != "" {
		t.Fatal("navigation keys should not reach the composer")
	}
}

func TestSendPinsPage(t *testing.T) {
	m := mounted(t, &stubSource{sessionID: "s-1"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	pinned := m.page.YOffset

	m = typeText(t, m, "hello")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.guard.Held() {
		t.Fatal("guard should be held while sending")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true})
	if m.page.YOffset != pinned {
		t.Fatalf("page moved during send: %d != %d", m.page.YOffset, pinned)
	}

	m = run(t, m, cmd)
	if m.guard.Held() {
		t.Fatal("guard should be released after the reply")
	}
	if m.page.YOffset != pinned {
		t.Fatalf("reply moved the page: %d != %d", m.page.YOffset, pinned)
	}
}

func TestWindowSizeIgnoresZero(t *testing.T) {
	m := New(&stubSource{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	if m.width != defaultWidth || m.height != defaultHeight {
		t.Fatalf("size = %dx%d", m.width, m.height)
	}
}

func TestQuit(t *testing.T) {
	m := New(&stubSource{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc should quit")
	}
}
