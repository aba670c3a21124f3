package game

// Input is one press as the player made it, in song time.
type Input struct {
	Lane string
	Time float64
}
