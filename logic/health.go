package logic

// health is the hit-point counter shared by Player and Enemy: values
// clamp into [0, max], and every update arms a dirty flag that the
// read accessor consumes.
type health struct {
	value   int
	max     int
	changed bool
}

func newHealth(max int) health {
	return health{value: max, max: max, changed: true}
}

// update applies a signed change, clamping the result into [0, max]
func (h *health) update(delta int) {
	v := h.value + delta
	if v < 0 {
		v = 0
	}
	if v > h.max {
		v = h.max
	}
	h.value = v
	h.changed = true
}

// read returns the current value and whether it changed since the last
// read. The changed flag clears on read, so a poller sees each change
// exactly once.
func (h *health) read() (int, bool) {
	changed := h.changed
	h.changed = false
	return h.value, changed
}

// reset restores full health and arms the dirty flag so the HUD
// refreshes on the next poll
func (h *health) reset() {
	h.value = h.max
	h.changed = true
}

func (h *health) dead() bool {
	return h.value == 0
}
