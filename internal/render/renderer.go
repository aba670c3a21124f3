package render

import (
	"git.lost.host/meutraa/nota/internal/engine"
)

// Renderer draws the field once per frame and hears about everything else
// through the engine's Presenter calls.
type Renderer interface {
	engine.Presenter
	Init(raw bool) error
	Deinit() error
	Draw(live []*engine.Note, pos float64, paused bool)
	Reset()
}
