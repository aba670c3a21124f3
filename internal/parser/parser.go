package parser

import "git.lost.host/meutraa/nota/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
