package tui

// pageGuard pins the page viewport while sends are in flight. The model
// records the offset when idle and restores it while held.
type pageGuard struct {
	held   int
	offset int
}

// Suspend implements panel.ScrollGuard.
func (g *pageGuard) Suspend() func() {
	g.held++
	return func() {
		if g.held > 0 {
			g.held--
		}
	}
}

func (g *pageGuard) Held() bool { return g.held > 0 }
