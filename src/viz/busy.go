package viz

import "sync"

// Control is the slice of a UI trigger the BusyGate needs: enable/disable
// plus a swappable label. A fyne button satisfies this through a thin
// adapter; headless runs pass nil controls.
type Control interface {
	Disable()
	Enable()
	Label() string
	SetLabel(string)
}

// EngageBusy disables the control and swaps its label for busyLabel, and
// returns a release function restoring the original state. The release is
// safe to call more than once but takes effect exactly once, so callers can
// defer it and still release early on short-circuit paths. A nil control
// yields a no-op release.
func EngageBusy(c Control, busyLabel string) (release func()) {
	if c == nil {
		return func() {}
	}
	orig := c.Label()
	c.SetLabel(busyLabel)
	c.Disable()
	var once sync.Once
	return func() {
		once.Do(func() {
			c.SetLabel(orig)
			c.Enable()
		})
	}
}
