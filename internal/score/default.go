package score

type DefaultScorer struct {
	score           int
	totalNotes      int
	hitNotes        int
	consecutiveHits int

	// Times already credited, so a note can never count twice
	credited map[float64]struct{}
}

func NewDefaultScorer() *DefaultScorer {
	return &DefaultScorer{credited: map[float64]struct{}{}}
}

func (s *DefaultScorer) ResetScore() {
	s.score = 0
	s.hitNotes = 0
	s.consecutiveHits = 0
	s.credited = map[float64]struct{}{}
}

// SetTotalNotes also zeroes the hit count, matching a fresh chart.
func (s *DefaultScorer) SetTotalNotes(total int) {
	if total < 0 {
		total = 0
	}
	s.totalNotes = total
	s.hitNotes = 0
}

func (s *DefaultScorer) RegisterHit(t float64) bool {
	if nil == s.credited {
		s.credited = map[float64]struct{}{}
	}
	if _, ok := s.credited[t]; ok {
		return false
	}
	s.credited[t] = struct{}{}
	s.hitNotes++
	s.consecutiveHits++
	if s.consecutiveHits%StreakLength == 0 {
		s.score += StreakBonus
	}
	return true
}

// RegisterMiss breaks the streak. Banked score is kept.
func (s *DefaultScorer) RegisterMiss() {
	s.consecutiveHits = 0
}

func (s *DefaultScorer) AddScore(amount int) {
	s.score += amount
}

func (s *DefaultScorer) GetAccuracyPercent() float64 {
	if s.totalNotes <= 0 {
		return 0
	}
	return float64(s.hitNotes) * 100 / float64(s.totalNotes)
}

func (s *DefaultScorer) Outcome() Outcome {
	if s.GetAccuracyPercent() >= SuccessThreshold {
		return Success
	}
	return Failure
}

func (s *DefaultScorer) Snapshot() Snapshot {
	return Snapshot{
		Score:           s.score,
		TotalNotes:      s.totalNotes,
		HitNotes:        s.hitNotes,
		ConsecutiveHits: s.consecutiveHits,
		Accuracy:        s.GetAccuracyPercent(),
	}
}
