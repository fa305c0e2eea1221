package mutator

import "time"

// SetClock overrides the timestamp source for optimistic placeholders.
func (m *Mutator) SetClock(fn func() time.Time) {
	m.now = fn
}

// SetTempIDSource overrides temp-identifier synthesis.
func (m *Mutator) SetTempIDSource(fn func() string) {
	m.newTempID = fn
}
