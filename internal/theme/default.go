package theme

import (
	"fmt"
	"image/color"
	"strings"

	"git.lost.host/meutraa/nota/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) NoteColor(name string) color.RGBA {
	c, ok := noteColors[octave(name)]
	if !ok {
		c = noteColors[""]
	}
	if game.IsSharp(name) {
		c = darken(c)
	}
	return c
}

func (t *DefaultTheme) RenderNote(name string, judged bool) string {
	sym := noteSym
	if judged {
		sym = judgedSym
	}
	c := t.NoteColor(name)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderHitField(lane string, held bool) string {
	if held {
		c := t.NoteColor(lane)
		return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, heldSym)
	}
	if game.IsSharp(lane) {
		return sharpBarSym
	}
	return barSym
}

const (
	noteSym     = "█"
	judgedSym   = "▒"
	heldSym     = "▀"
	barSym      = "─"
	sharpBarSym = "┄"
)

var noteColors = map[string]color.RGBA{
	"8vb": {0, 118, 236, 255},   // low octave blue
	"":    {0, 236, 128, 255},   // middle octave green
	"8va": {236, 30, 0, 255},    // high octave red
	"?":   {255, 255, 255, 255}, // other white
}

func octave(name string) string {
	switch {
	case strings.HasSuffix(name, "8vb"):
		return "8vb"
	case strings.HasSuffix(name, "8va"):
		return "8va"
	case name == game.Applause:
		return "?"
	}
	if _, ok := game.Semitone(name); !ok {
		return "?"
	}
	return ""
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}
