package engine

import (
	"git.lost.host/meutraa/nota/internal/game"
	"git.lost.host/meutraa/nota/internal/score"
)

// Presenter is whatever shows the game. The engine only ever pushes to it.
type Presenter interface {
	// NoteChanged is called on spawn and on every state change
	NoteChanged(n *Note)
	Judged(lane string, v game.Verdict)
	Released(lane string)
	ScoreChanged(s score.Snapshot)
	ChordChanged(text string)
	Finished(o score.Outcome, accuracy float64)
}

// Sound starts and stops notes. The engine never manages devices.
type Sound interface {
	PlayNote(id string, channel int)
	StopNote(id string, channel int)
}

type NopPresenter struct{}

func (NopPresenter) NoteChanged(n *Note)                        {}
func (NopPresenter) Judged(lane string, v game.Verdict)         {}
func (NopPresenter) Released(lane string)                       {}
func (NopPresenter) ScoreChanged(s score.Snapshot)              {}
func (NopPresenter) ChordChanged(text string)                   {}
func (NopPresenter) Finished(o score.Outcome, accuracy float64) {}

type nopSound struct{}

func (nopSound) PlayNote(id string, channel int) {}
func (nopSound) StopNote(id string, channel int) {}
