package game

// NoteEvent is one entry of a chart: which note to play and when
// to release its falling entity.
type NoteEvent struct {
	Name     string  // The note identity, also the lane it falls in
	Time     float64 // Seconds from song start at which the note spawns
	Duration float64 // Seconds the note sounds, also its retire window

	// This is state
	Spawned bool // Set once the scheduler has created an entity for it
}
