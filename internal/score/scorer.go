package score

// Scorer is the session tally. Only judge verdicts mutate it.
type Scorer interface {
	ResetScore()
	SetTotalNotes(total int)

	// RegisterHit credits the note scheduled at t. It reports false, and
	// changes nothing, when t was already credited.
	RegisterHit(t float64) bool
	RegisterMiss()
	AddScore(amount int)

	GetAccuracyPercent() float64
	Outcome() Outcome
	Snapshot() Snapshot
}

type Snapshot struct {
	Score           int
	TotalNotes      int
	HitNotes        int
	ConsecutiveHits int
	Accuracy        float64
	Applause        float64 // Fill of the applause bar, 0 to 1, set by the engine
}

type Outcome int

const (
	Failure Outcome = iota
	Success
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

const (
	// SuccessThreshold is the accuracy, in percent, a run needs to succeed.
	SuccessThreshold = 70.0

	// StreakLength consecutive hits earn StreakBonus points.
	StreakLength = 20
	StreakBonus  = 10

	// HitPoints is what every credited hit is worth on its own.
	HitPoints = 1
)
