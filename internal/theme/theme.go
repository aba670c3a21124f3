package theme

import "image/color"

type Theme interface {
	NoteColor(name string) color.RGBA
	RenderNote(name string, judged bool) string
	RenderHitField(lane string, held bool) string
}
