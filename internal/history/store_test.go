package history

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
)

func TestStoreSaveLoad(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"), log.New(ioutil.Discard, "", 0))
	if nil != err {
		t.Fatal(err)
	}
	defer s.Close()

	chart := game.NewChart([]*game.NoteEvent{
		{Name: "C", Time: 0, Duration: 0.5},
		{Name: "D", Time: 1, Duration: 0.5},
	})
	other := game.NewChart([]*game.NoteEvent{{Name: "E", Time: 0, Duration: 1}})

	played := time.Unix(1600000000, 0)
	runs := []Run{
		{PlayedAt: played, Score: 1, Accuracy: 50, Outcome: score.Failure,
			Inputs: []game.Input{{Lane: "C", Time: 0.1}}},
		{PlayedAt: played.Add(time.Minute), Score: 2, Accuracy: 100, Outcome: score.Success, Autoplay: true,
			Inputs: []game.Input{{Lane: "C", Time: 0.1}, {Lane: "D", Time: 1.1}}},
	}
	for _, r := range runs {
		if err := s.Save(chart, []string{"C", "D"}, r); nil != err {
			t.Fatal(err)
		}
	}
	if err := s.Save(other, []string{"E"}, Run{Score: 9}); nil != err {
		t.Fatal(err)
	}

	loaded, err := s.Load(chart)
	if nil != err {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 runs, got %v", len(loaded))
	}
	last := loaded[1]
	if last.Score != 2 || last.Outcome != score.Success || !last.Autoplay || last.Accuracy != 100 {
		t.Fatalf("unexpected run %+v", last)
	}
	if !last.PlayedAt.Equal(played.Add(time.Minute)) {
		t.Errorf("played at %v", last.PlayedAt)
	}
	if len(last.Inputs) != 2 || last.Inputs[1].Lane != "D" {
		t.Errorf("inputs %v", last.Inputs)
	}

	best, ok := s.Best(chart)
	if !ok || best.Score != 2 {
		t.Errorf("best %+v", best)
	}
}

func TestHashChartIgnoresSpawnState(t *testing.T) {
	a := game.NewChart([]*game.NoteEvent{{Name: "C", Time: 0, Duration: 0.5}})
	b := game.NewChart([]*game.NoteEvent{{Name: "C", Time: 0, Duration: 0.5, Spawned: true}})
	c := game.NewChart([]*game.NoteEvent{{Name: "C", Time: 0, Duration: 0.25}})
	if HashChart(a) != HashChart(b) {
		t.Error("spawn flags changed the hash")
	}
	if HashChart(a) == HashChart(c) {
		t.Error("different charts share a hash")
	}
}
