// Package site holds the page sections around the chat panel and resolves
// navigation targets by section key.
package site

import "strings"

// Key names a page section.
type Key string

const (
	Hero       Key = "hero"
	Features   Key = "features"
	HowItWorks Key = "how-it-works"
	About      Key = "about"
	Chat       Key = "chat"
	Contact    Key = "contact"
	Footer     Key = "footer"
)

// Section is one block of page copy.
type Section struct {
	Key   Key
	Title string
	Lines []string
}

// NavItem is an entry of the navigation bar.
type NavItem struct {
	Label    string
	Key      Key
	Shortcut string
}

// Nav lists the navigation bar entries in display order.
var Nav = []NavItem{
	{Label: "Home", Key: Hero, Shortcut: "alt+1"},
	{Label: "About", Key: About, Shortcut: "alt+2"},
	{Label: "Chat", Key: Chat, Shortcut: "alt+3"},
	{Label: "Contact", Key: Contact, Shortcut: "alt+4"},
}

// NavigationTarget resolves a section key to a line offset in the page.
type NavigationTarget interface {
	Offset(key Key) (int, bool)
}

// Navigate scrolls to key through scroll. It reports false for unknown keys.
func Navigate(target NavigationTarget, key Key, scroll func(offset int)) bool {
	offset, ok := target.Offset(key)
	if !ok {
		return false
	}
	scroll(offset)
	return true
}

// Block is a rendered section.
type Block struct {
	Key  Key
	Text string
}

// Layout is the page assembled from rendered blocks.
type Layout struct {
	content string
	offsets map[Key]int
}

// NewLayout stacks blocks separated by one blank line and records the line
// each block starts on.
func NewLayout(blocks []Block) Layout {
	offsets := make(map[Key]int, len(blocks))
	parts := make([]string, 0, len(blocks))
	line := 0
	for _, b := range blocks {
		offsets[b.Key] = line
		text := strings.TrimRight(b.Text, "\n")
		parts = append(parts, text)
		line += strings.Count(text, "\n") + 2
	}
	return Layout{content: strings.Join(parts, "\n\n"), offsets: offsets}
}

// Content returns the page text.
func (l Layout) Content() string { return l.content }

// Offset implements NavigationTarget.
func (l Layout) Offset(key Key) (int, bool) {
	off, ok := l.offsets[key]
	return off, ok
}
