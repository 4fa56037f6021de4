package control

// Latch turns a held key into a single press event.
// It fires once on the frame the key goes down and re-arms on release.
type Latch struct {
	wasDown bool
}

// Update feeds the current key state and reports whether this frame is a
// fresh press.
func (l *Latch) Update(down bool) bool {
	if down && !l.wasDown {
		l.wasDown = true
		return true
	}
	if !down {
		l.wasDown = false
	}
	return false
}
