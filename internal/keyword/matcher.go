// Package keyword picks canned replies by lowercase substring match against
// ordered trigger groups.
package keyword

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Group is a named set of triggers and the replies they unlock.
type Group struct {
	Name      string
	Triggers  []string
	Responses []string
}

// Matcher selects a reply from the first group whose trigger appears in the
// input, or from the defaults when none does. Safe for concurrent use.
type Matcher struct {
	groups   []Group
	defaults []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRand makes selection reproducible.
func WithRand(r *rand.Rand) Option {
	return func(m *Matcher) { m.rnd = r }
}

// New builds a matcher. Triggers are lowercased once here; groups without
// responses never match.
func New(groups []Group, defaults []string, opts ...Option) *Matcher {
	m := &Matcher{
		groups:   make([]Group, 0, len(groups)),
		defaults: append([]string(nil), defaults...),
	}
	for _, g := range groups {
		if len(g.Responses) == 0 {
			continue
		}
		triggers := make([]string, 0, len(g.Triggers))
		for _, t := range g.Triggers {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				triggers = append(triggers, t)
			}
		}
		m.groups = append(m.groups, Group{
			Name:      g.Name,
			Triggers:  triggers,
			Responses: append([]string(nil), g.Responses...),
		})
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the first group with a trigger contained in text.
func (m *Matcher) Match(text string) (Group, bool) {
	lowered := strings.ToLower(text)
	for _, g := range m.groups {
		for _, t := range g.Triggers {
			if strings.Contains(lowered, t) {
				return g, true
			}
		}
	}
	return Group{}, false
}

// Respond picks a reply for text. It returns "" only when nothing matches
// and the matcher has no defaults.
func (m *Matcher) Respond(text string) string {
	if g, ok := m.Match(text); ok {
		return m.pick(g.Responses)
	}
	return m.pick(m.defaults)
}

// Defaults returns a copy of the unmatched reply set.
func (m *Matcher) Defaults() []string {
	return append([]string(nil), m.defaults...)
}

func (m *Matcher) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	if m.rnd == nil {
		return options[rand.IntN(len(options))]
	}
	m.mu.Lock()
	i := m.rnd.IntN(len(options))
	m.mu.Unlock()
	return options[i]
}
