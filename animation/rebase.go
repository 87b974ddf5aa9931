package animation

// Rebase returns where a selection at current ends up after delta elements are
// inserted (delta > 0) or removed (delta < 0) at changed. A selection of -1
// stays -1. Changes at or before the selection shift it by delta, so a removal
// of the selected element itself moves the selection to the element before it.
func Rebase(current, changed, delta int) int {
	if current < 0 || delta == 0 {
		return current
	}
	if changed <= current {
		return current + delta
	}
	return current
}
