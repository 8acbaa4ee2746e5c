package panel

import "sync"

// ScrollGuard pins the surrounding page while a send is in flight. Suspend
// returns the function that ends the suspension.
type ScrollGuard interface {
	Suspend() (release func())
}

type noopGuard struct{}

func (noopGuard) Suspend() func() { return func() {} }

// once makes a release function safe to call more than once.
func once(release func()) func() {
	if release == nil {
		return func() {}
	}
	var o sync.Once
	return func() { o.Do(release) }
}
