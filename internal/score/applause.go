package score

// ApplauseBar is the crowd meter. Hits raise it, misses lower it, and an
// empty bar ends the run.
type ApplauseBar struct {
	Min, Max, Initial float64
	Increase          float64
	Decrease          float64

	value float64
}

func NewApplauseBar() *ApplauseBar {
	b := &ApplauseBar{Min: 0, Max: 100, Initial: 50, Increase: 10, Decrease: 10}
	b.Reset()
	return b
}

func (b *ApplauseBar) Reset() {
	b.value = b.clamp(b.Initial)
}

func (b *ApplauseBar) OnHit() {
	b.value = b.clamp(b.value + b.Increase)
}

func (b *ApplauseBar) OnMiss() {
	b.value = b.clamp(b.value - b.Decrease)
}

func (b *ApplauseBar) Value() float64 {
	return b.value
}

// Fill is the value as a fraction of the bar, for drawing.
func (b *ApplauseBar) Fill() float64 {
	if b.Max <= b.Min {
		return 0
	}
	return (b.value - b.Min) / (b.Max - b.Min)
}

func (b *ApplauseBar) Depleted() bool {
	return b.value <= b.Min
}

func (b *ApplauseBar) clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}
