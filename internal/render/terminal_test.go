package render

import (
	"bytes"
	"io/ioutil"
	"log"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/nota/internal/engine"
	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
)

func newTestTerminal(lanes []string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	t := NewTerminal(lanes, engine.DefaultField, 100*time.Millisecond)
	t.Out = out
	return t, out
}

func TestBar(t *testing.T) {
	expected := map[float64]string{
		0:   "[....]",
		0.5: "[##..]",
		1:   "[####]",
		2:   "[####]",
		-1:  "[....]",
	}
	for fill, s := range expected {
		if got := bar(fill, 4); got != s {
			t.Errorf("%v: got %v, expected %v", fill, got, s)
		}
	}
}

func TestRows(t *testing.T) {
	term, _ := newTestTerminal(game.Lanes)
	if term.row(0) != term.hitRow() {
		t.Error("the hit line is not on the hit row")
	}
	if term.row(engine.DefaultField.SpawnHeight) != topRow {
		t.Errorf("spawn height drawn at row %v", term.row(engine.DefaultField.SpawnHeight))
	}
	if term.row(-1) <= term.hitRow() {
		t.Error("below the hit line should be further down")
	}
}

func TestFeedbackExpires(t *testing.T) {
	term, out := newTestTerminal([]string{"C"})
	term.Judged("C", game.Hit(1))
	term.ScoreChanged(score.Snapshot{ConsecutiveHits: 3})
	term.Draw(nil, 0, false)
	if !strings.Contains(out.String(), "Hit! x3") {
		t.Fatal("no hit feedback drawn")
	}

	// 1.5s at 100ms a frame
	for i := 0; i < 14; i++ {
		term.Draw(nil, 0, false)
	}
	out.Reset()
	term.Draw(nil, 0, false)
	if strings.Contains(out.String(), "Hit!") {
		t.Fatal("feedback outlived its time")
	}

	term.Judged("C", game.Miss)
	term.ScoreChanged(score.Snapshot{})
	out.Reset()
	term.Draw(nil, 0, false)
	if !strings.Contains(out.String(), "Miss!") {
		t.Fatal("no miss feedback drawn")
	}
}

func TestDrawsLiveNotes(t *testing.T) {
	term, out := newTestTerminal([]string{"C", "D"})
	e := engine.New(game.NewChart([]*game.NoteEvent{
		{Name: "C", Time: 0, Duration: 1},
	}), engine.Options{
		Lanes: []string{"C", "D"},
		Log:   log.New(ioutil.Discard, "", 0),
	}, nil, term)
	e.Tick(0)
	e.Tick(time.Second)
	term.Draw(e.Live(), e.Position(), false)
	if !strings.Contains(out.String(), "█") {
		t.Fatal("falling note not drawn")
	}
}

func TestFinishedBannerClearsOnReset(t *testing.T) {
	term, out := newTestTerminal([]string{"C"})
	term.Finished(score.Success, 100)
	term.Draw(nil, 0, false)
	if !strings.Contains(out.String(), "Success!") {
		t.Fatal("no banner")
	}
	term.Reset()
	out.Reset()
	term.Draw(nil, 0, false)
	if strings.Contains(out.String(), "Success!") {
		t.Fatal("banner survived a reset")
	}
}

func TestStatusShowsLength(t *testing.T) {
	term, out := newTestTerminal([]string{"C"})
	term.Draw(nil, 1.5, false)
	if strings.Contains(out.String(), " / ") {
		t.Fatal("length drawn before it was known")
	}
	term.Length = 12
	out.Reset()
	term.Draw(nil, 1.5, true)
	if !strings.Contains(out.String(), "1.50s / 12.00s  paused") {
		t.Fatal("no progress in the status line")
	}
}
