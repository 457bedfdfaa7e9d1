package section

import "sync"

// EntranceThreshold is the visible fraction at which a section counts as
// having entered the viewport.
const EntranceThreshold = 0.3

// Visibility is a one-way NotSeen to Seen flag.
type Visibility struct {
	mu   sync.Mutex
	seen bool
}

func NewVisibility(seen bool) *Visibility {
	return &Visibility{seen: seen}
}

// Observe records an intersection ratio and reports whether this call
// flipped the flag.
func (v *Visibility) Observe(ratio float64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seen || ratio < EntranceThreshold {
		return false
	}
	v.seen = true
	return true
}

func (v *Visibility) Seen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seen
}
