package score

import "testing"

func TestRegisterHitIsIdempotent(t *testing.T) {
	s := NewDefaultScorer()
	s.SetTotalNotes(4)
	if !s.RegisterHit(1.5) {
		t.Fail()
	}
	if s.RegisterHit(1.5) {
		t.Log("second credit of the same time should be refused")
		t.Fail()
	}
	if hits := s.Snapshot().HitNotes; hits != 1 {
		t.Errorf("expected 1 hit, got %v", hits)
	}
}

var accuracyTests = []struct {
	total, hits int
	accuracy    float64
	outcome     Outcome
}{
	{0, 0, 0, Failure},
	{10, 7, 70, Success},
	{10, 6, 60, Failure},
	{2, 1, 50, Failure},
	{3, 3, 100, Success},
}

func TestAccuracy(t *testing.T) {
	for _, test := range accuracyTests {
		s := NewDefaultScorer()
		s.SetTotalNotes(test.total)
		for i := 0; i < test.hits; i++ {
			s.RegisterHit(float64(i))
		}
		if a := s.GetAccuracyPercent(); a != test.accuracy {
			t.Errorf("%v/%v: accuracy %v, expected %v", test.hits, test.total, a, test.accuracy)
		}
		if o := s.Outcome(); o != test.outcome {
			t.Errorf("%v/%v: outcome %v, expected %v", test.hits, test.total, o, test.outcome)
		}
	}
}

func TestStreakBonus(t *testing.T) {
	s := NewDefaultScorer()
	s.SetTotalNotes(100)
	for i := 0; i < 19; i++ {
		s.RegisterHit(float64(i))
	}
	if s.Snapshot().Score != 0 {
		t.Fatalf("bonus fired early: %v", s.Snapshot().Score)
	}
	s.RegisterHit(19)
	if s.Snapshot().Score != StreakBonus {
		t.Fatalf("expected bonus at 20th hit, got %v", s.Snapshot().Score)
	}
	for i := 20; i < 39; i++ {
		s.RegisterHit(float64(i))
	}
	if s.Snapshot().Score != StreakBonus {
		t.Fatalf("second bonus fired early: %v", s.Snapshot().Score)
	}
}

func TestMissResetsStreak(t *testing.T) {
	s := NewDefaultScorer()
	s.SetTotalNotes(100)
	for i := 0; i < 19; i++ {
		s.RegisterHit(float64(i))
	}
	s.RegisterMiss()
	// 20th and later cumulative hits, but only 19 in a row
	for i := 19; i < 38; i++ {
		s.RegisterHit(float64(i))
	}
	if s.Snapshot().Score != 0 {
		t.Fatalf("bonus fired without 20 consecutive hits: %v", s.Snapshot().Score)
	}
	s.RegisterHit(38)
	if s.Snapshot().Score != StreakBonus {
		t.Fatalf("expected bonus after a fresh streak of 20, got %v", s.Snapshot().Score)
	}
}

func TestDuplicateHitDoesNotExtendStreak(t *testing.T) {
	s := NewDefaultScorer()
	s.SetTotalNotes(100)
	for i := 0; i < 19; i++ {
		s.RegisterHit(float64(i))
	}
	s.RegisterHit(0)
	if s.Snapshot().ConsecutiveHits != 19 || s.Snapshot().Score != 0 {
		t.Log(s.Snapshot())
		t.Fail()
	}
}

func TestResetScore(t *testing.T) {
	s := NewDefaultScorer()
	s.SetTotalNotes(2)
	s.RegisterHit(1)
	s.AddScore(5)
	s.ResetScore()
	if snap := s.Snapshot(); snap.Score != 0 || snap.HitNotes != 0 || snap.ConsecutiveHits != 0 {
		t.Log(snap)
		t.Fail()
	}
	if !s.RegisterHit(1) {
		t.Log("credited times should be forgotten after a reset")
		t.Fail()
	}
}

func TestApplauseBar(t *testing.T) {
	b := NewApplauseBar()
	if b.Value() != 50 || b.Fill() != 0.5 {
		t.Fail()
	}
	for i := 0; i < 10; i++ {
		b.OnHit()
	}
	if b.Value() != 100 {
		t.Errorf("expected clamp at 100, got %v", b.Value())
	}
	for i := 0; i < 9; i++ {
		b.OnMiss()
	}
	if b.Depleted() {
		t.Fatal("depleted too early")
	}
	b.OnMiss()
	if !b.Depleted() || b.Value() != 0 {
		t.Errorf("expected empty bar, got %v", b.Value())
	}
	b.OnMiss()
	if b.Value() != 0 {
		t.Fail()
	}
	b.Reset()
	if b.Value() != 50 {
		t.Fail()
	}
}
