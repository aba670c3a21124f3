package game

// Chart is the ordered list of note events for one song.
// Order is taken from the source and is not relied on for timing.
type Chart struct {
	Events []*NoteEvent
}

func NewChart(events []*NoteEvent) *Chart {
	return &Chart{Events: events}
}

// Reset clears every spawn flag so the chart can be played again.
func (c *Chart) Reset() {
	for _, e := range c.Events {
		e.Spawned = false
	}
}

// UniqueTimes is the number of distinct event times, which is what a
// session counts as its total notes. Chords share a time and count once.
func (c *Chart) UniqueTimes() int {
	seen := make(map[float64]struct{}, len(c.Events))
	for _, e := range c.Events {
		seen[e.Time] = struct{}{}
	}
	return len(seen)
}

// AllSpawned reports whether no event is still waiting to spawn.
// An empty chart is trivially all spawned.
func (c *Chart) AllSpawned() bool {
	for _, e := range c.Events {
		if !e.Spawned {
			return false
		}
	}
	return true
}

// End is the latest time any event stops sounding.
func (c *Chart) End() float64 {
	end := 0.0
	for _, e := range c.Events {
		if t := e.Time + e.Duration; t > end {
			end = t
		}
	}
	return end
}
