package engine

// Field is the geometry notes fall through. The hit line is at 0 and
// notes fall from SpawnHeight towards negative values.
type Field struct {
	SpawnHeight     float64 // Where a note's bottom edge starts
	ZoneHalfHeight  float64 // Hit zones span [-ZoneHalfHeight, ZoneHalfHeight]
	DestroyBelow    float64 // A note whose top passes this is off screen
	TravelTime      float64 // Seconds from spawn to the hit line
	LengthPerSecond float64 // Drawn length of a note per second of duration
}

var DefaultField = Field{
	SpawnHeight:     10,
	ZoneHalfHeight:  0.5,
	DestroyBelow:    -2,
	TravelTime:      2,
	LengthPerSecond: 1,
}

// Velocity is how fast a note spawned at pos must fall to reach the hit
// line TravelTime after its scheduled time. Late spawns fall faster.
func (f Field) Velocity(scheduled, pos float64) float64 {
	timeToReach := scheduled + f.TravelTime - pos
	if timeToReach <= 0 {
		timeToReach = f.TravelTime
	}
	if timeToReach <= 0 {
		return f.SpawnHeight
	}
	return f.SpawnHeight / timeToReach
}

// Overlaps reports whether a note spanning [bottom, top] touches the zone.
func (f Field) Overlaps(bottom, top float64) bool {
	return bottom <= f.ZoneHalfHeight && top >= -f.ZoneHalfHeight
}

// Gone reports whether a note whose top is at top has left the screen.
func (f Field) Gone(top float64) bool {
	return top < f.DestroyBelow
}
