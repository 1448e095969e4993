package puzzle

// CheckSolved reports whether all rings sit on the first or the third pole
func CheckSolved(reg *Registry, totalRingCount int) bool {
	if totalRingCount <= 0 {
		return false
	}
	return reg.Len(0) == totalRingCount || reg.Len(2) == totalRingCount
}

// SolvedDetector latches the solved condition and announces it once
type SolvedDetector struct {
	solved   bool
	notifier Notifier
}

// NewSolvedDetector creates a detector, notifier may be nil
func NewSolvedDetector(notifier Notifier) *SolvedDetector {
	return &SolvedDetector{notifier: notifier}
}

// Evaluate checks the terminal condition after a committed move
// Once solved the flag stays set and later calls do nothing
func (d *SolvedDetector) Evaluate(reg *Registry) bool {
	if d.solved {
		return true
	}
	if !CheckSolved(reg, reg.RingCount()) {
		return false
	}
	d.solved = true
	if d.notifier != nil {
		d.notifier.AnnounceSolved()
	}
	return true
}

// Solved returns the latched flag
func (d *SolvedDetector) Solved() bool {
	return d.solved
}
