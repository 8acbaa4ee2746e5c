package site

import (
	"strings"
	"testing"
)

func TestNewLayoutOffsets(t *testing.T) {
	layout := NewLayout([]Block{
		{Key: Hero, Text: "hero\nline"},
		{Key: About, Text: "about\n"},
		{Key: Contact, Text: "contact"},
	})

	cases := map[Key]int{Hero: 0, About: 3, Contact: 5}
	for key, want := range cases {
		got, ok := layout.Offset(key)
		if !ok || got != want {
			t.Fatalf("Offset(%s) = %d, %v; want %d", key, got, ok, want)
		}
	}

	lines := strings.Split(layout.Content(), "\n")
	if lines[3] != "about" || lines[5] != "contact" {
		t.Fatalf("offsets do not match content: %q", lines)
	}

	if _, ok := layout.Offset(Footer); ok {
		t.Fatal("missing section should not resolve")
	}
}

func TestNavigate(t *testing.T) {
	layout := NewLayout([]Block{{Key: Hero, Text: "a"}, {Key: Chat, Text: "b"}})

	scrolled := -1
	if !Navigate(layout, Chat, func(off int) { scrolled = off }) {
		t.Fatal("expected chat to resolve")
	}
	if scrolled != 2 {
		t.Fatalf("scrolled to %d, want 2", scrolled)
	}

	if Navigate(layout, Key("pricing"), func(int) { t.Fatal("unexpected scroll") }) {
		t.Fatal("unknown key should not navigate")
	}
}

func TestSectionsCoverNavigation(t *testing.T) {
	keys := make(map[Key]bool)
	for _, s := range Sections() {
		if s.Title == "" || len(s.Lines) == 0 {
			t.Fatalf("section %s is empty", s.Key)
		}
		keys[s.Key] = true
	}
	for _, item := range Nav {
		if !keys[item.Key] {
			t.Fatalf("nav item %s points at a missing section", item.Label)
		}
	}
}
