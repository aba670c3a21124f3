package engine

// HitZone is the stationary slot of one lane. It points at, but does not
// own, the note currently overlapping it.
type HitZone struct {
	Lane string

	note *Note
}

func NewHitZone(lane string) *HitZone {
	return &HitZone{Lane: lane}
}

// Enter makes n the occupant. The last note to enter wins.
func (z *HitZone) Enter(n *Note) {
	z.note = n
}

// Exit clears the zone only if n is the current occupant.
func (z *HitZone) Exit(n *Note) {
	if z.note == n {
		z.note = nil
	}
}

func (z *HitZone) Occupant() *Note {
	return z.note
}

func (z *HitZone) Clear() {
	z.note = nil
}
