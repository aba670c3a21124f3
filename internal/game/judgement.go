package game

import "fmt"

// Verdict is the outcome of judging one press.
type Verdict struct {
	Hit  bool
	Time float64 // The scheduled time of the note that was hit
}

func Hit(t float64) Verdict {
	return Verdict{Hit: true, Time: t}
}

var Miss = Verdict{}

func (v Verdict) String() string {
	if v.Hit {
		return fmt.Sprintf("hit(%.3f)", v.Time)
	}
	return "miss"
}
