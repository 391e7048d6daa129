package model

const historySize = 5

// History keeps the hashes of recent views to detect static or short-cycle grids
type History struct {
	hashes []string
}

// Update records the hash of v, keeping only the last few states
func (h *History) Update(v *View) {
	h.hashes = append(h.hashes, v.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether v repeats one of the last three recorded states,
// i.e. the grid is static or cycling with period 2 or 3
func (h *History) IsStagnant(v *View) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := v.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
