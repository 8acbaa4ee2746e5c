// Package panel implements the chat panel as a UI-independent state machine.
//
// A Panel is driven from a single event loop. Methods that start network work
// return a Cmd; the loop runs the Cmd off-thread and feeds the resulting Event
// back through Handle.
package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var errNoSessionID = errors.New("backend returned no session id")

// State is the panel lifecycle state.
type State int

const (
	Uninitialized State = iota
	AwaitingSession
	Ready
	Sending
	ReadyWithoutSession
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case AwaitingSession:
		return "awaiting-session"
	case Ready:
		return "ready"
	case Sending:
		return "sending"
	case ReadyWithoutSession:
		return "ready-without-session"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Ordering decides when replies to concurrent sends are appended.
type Ordering int

const (
	// OrderArrival appends each reply as soon as it resolves.
	OrderArrival Ordering = iota
	// OrderSend holds a reply until every earlier send has resolved.
	OrderSend
)

// Event is the outcome of a Cmd.
type Event interface {
	event()
}

// SessionCreated completes the Cmd returned by Mount.
type SessionCreated struct {
	SessionID string
	Err       error
}

// ReplyReceived completes the Cmd returned by Submit. Seq identifies the send.
type ReplyReceived struct {
	Seq   uint64
	Reply Reply
	Err   error
}

func (SessionCreated) event() {}
func (ReplyReceived) event()  {}

// Cmd performs blocking work and reports its outcome. It never panics.
type Cmd func() Event

// Option configures a Panel.
type Option func(*Panel)

// WithClock replaces time.Now for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Panel) { p.now = now }
}

// WithOrdering selects the reply ordering. The default is OrderArrival.
func WithOrdering(o Ordering) Option {
	return func(p *Panel) { p.ordering = o }
}

// WithScrollGuard installs the page scroll suspension used during sends.
func WithScrollGuard(g ScrollGuard) Option {
	return func(p *Panel) {
		if g != nil {
			p.guard = g
		}
	}
}

// WithContext sets the context passed to the ResponseSource.
func WithContext(ctx context.Context) Option {
	return func(p *Panel) { p.ctx = ctx }
}

// Panel holds the conversation and composer state.
type Panel struct {
	source   ResponseSource
	ctx      context.Context
	now      func() time.Time
	ordering Ordering
	guard    ScrollGuard

	state     State
	sessionID string
	input     string
	messages  []Message
	lastID    int64
	banner    error

	nextSeq     uint64
	nextDeliver uint64
	inflight    map[uint64]func()
	held        map[uint64]ReplyReceived
}

// New returns an unmounted panel holding the greeting.
func New(source ResponseSource, opts ...Option) *Panel {
	p := &Panel{
		source:   source,
		ctx:      context.Background(),
		now:      time.Now,
		guard:    noopGuard{},
		inflight: make(map[uint64]func()),
		held:     make(map[uint64]ReplyReceived),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.appendMessage(Message{Text: Greeting, IsBot: true})
	return p
}

// Mount starts the session bootstrap. Only the first call returns a Cmd.
func (p *Panel) Mount() Cmd {
	if p.state != Uninitialized {
		return nil
	}
	p.state = AwaitingSession

	source, ctx := p.source, p.ctx
	return func() (ev Event) {
		defer func() {
			if r := recover(); r != nil {
				ev = SessionCreated{Err: fmt.Errorf("create session panicked: %v", r)}
			}
		}()
		id, err := source.CreateSession(ctx)
		return SessionCreated{SessionID: id, Err: err}
	}
}

// SetInput replaces the composer text. Typing is allowed in every state.
func (p *Panel) SetInput(text string) { p.input = text }

// Input returns the composer text.
func (p *Panel) Input() string { return p.input }

// CanSubmit reports whether Submit would send.
func (p *Panel) CanSubmit() bool {
	return p.sessionID != "" && strings.TrimSpace(p.input) != ""
}

// SendEnabled reports whether the send affordance is active at all.
func (p *Panel) SendEnabled() bool { return p.sessionID != "" }

// Submit sends the composer text. The user message is appended before the
// returned Cmd runs. Without text or a session it does nothing and returns nil.
func (p *Panel) Submit() Cmd {
	if !p.CanSubmit() {
		return nil
	}

	text := p.input
	p.appendMessage(Message{Text: text})
	p.input = ""

	seq := p.nextSeq
	p.nextSeq++
	p.inflight[seq] = once(p.guard.Suspend())
	p.state = Sending

	source, ctx, sessionID := p.source, p.ctx, p.sessionID
	return func() (ev Event) {
		defer func() {
			if r := recover(); r != nil {
				ev = ReplyReceived{Seq: seq, Err: fmt.Errorf("send panicked: %v", r)}
			}
		}()
		reply, err := source.SendMessage(ctx, text, sessionID)
		return ReplyReceived{Seq: seq, Reply: reply, Err: err}
	}
}

// HandleEnter submits on a bare Enter. With a modifier it inserts a newline.
func (p *Panel) HandleEnter(modifier bool) Cmd {
	if modifier {
		p.input += "\n"
		return nil
	}
	return p.Submit()
}

// Handle applies the outcome of a Cmd.
func (p *Panel) Handle(ev Event) {
	switch ev := ev.(type) {
	case SessionCreated:
		p.sessionCreated(ev)
	case ReplyReceived:
		p.replyReceived(ev)
	}
}

func (p *Panel) sessionCreated(ev SessionCreated) {
	if p.state != AwaitingSession {
		return
	}
	if ev.Err != nil || ev.SessionID == "" {
		err := ev.Err
		if err == nil {
			err = errNoSessionID
		}
		p.banner = &SessionInitError{Err: err}
		p.state = ReadyWithoutSession
		return
	}
	p.sessionID = ev.SessionID
	p.state = Ready
}

func (p *Panel) replyReceived(ev ReplyReceived) {
	if _, ok := p.inflight[ev.Seq]; !ok {
		return
	}
	if _, dup := p.held[ev.Seq]; dup {
		return
	}

	if p.ordering == OrderArrival {
		p.deliver(ev)
		return
	}

	p.held[ev.Seq] = ev
	for {
		next, ok := p.held[p.nextDeliver]
		if !ok {
			return
		}
		delete(p.held, p.nextDeliver)
		p.nextDeliver++
		p.deliver(next)
	}
}

func (p *Panel) deliver(ev ReplyReceived) {
	release := p.inflight[ev.Seq]
	delete(p.inflight, ev.Seq)
	defer release()

	if ev.Err != nil {
		p.appendMessage(Message{Text: SendFailureText, IsBot: true, IsError: true})
		p.banner = &SendError{Err: ev.Err}
	} else {
		p.appendMessage(Message{Text: ev.Reply.Text, IsBot: true, IsCrisis: ev.Reply.IsCrisis})
		if ev.Reply.SessionID != "" && ev.Reply.SessionID != p.sessionID {
			p.sessionID = ev.Reply.SessionID
		}
		if _, ok := p.banner.(*SendError); ok {
			p.banner = nil
		}
	}

	if len(p.inflight) == 0 {
		p.state = Ready
	}
}

func (p *Panel) appendMessage(m Message) {
	now := p.now()
	id := now.UnixMilli()
	if id <= p.lastID {
		id = p.lastID + 1
	}
	p.lastID = id

	m.ID = id
	m.Timestamp = now
	p.messages = append(p.messages, m)
}

// Messages returns a copy of the conversation.
func (p *Panel) Messages() []Message {
	return append([]Message(nil), p.messages...)
}

// State returns the lifecycle state.
func (p *Panel) State() State { return p.state }

// SessionID returns the held session id, "" before one is assigned.
func (p *Panel) SessionID() string { return p.sessionID }

// Typing reports whether the typing indicator is shown.
func (p *Panel) Typing() bool { return len(p.inflight) > 0 }

// Pending returns the number of unresolved sends.
func (p *Panel) Pending() int { return len(p.inflight) }

// Banner returns the error to display above the composer, or nil.
func (p *Panel) Banner() error { return p.banner }
