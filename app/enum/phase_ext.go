package enum

// Next returns the next phase in the cycle: idle -> callback -> setter -> getter -> idle.
// Unknown values restart the cycle at callback, the same as idle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseCallback:
		return PhaseSetter
	case PhaseSetter:
		return PhaseGetter
	case PhaseGetter:
		return PhaseIdle
	default:
		return PhaseCallback
	}
}

// Prev returns the previous phase in the cycle, wrapping idle back to getter.
func (p Phase) Prev() Phase {
	switch p {
	case PhaseCallback:
		return PhaseIdle
	case PhaseSetter:
		return PhaseCallback
	case PhaseGetter:
		return PhaseSetter
	default:
		return PhaseGetter
	}
}
