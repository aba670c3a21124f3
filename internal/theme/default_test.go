package theme

import (
	"image/color"
	"testing"
)

func TestNoteColor(t *testing.T) {
	th := &DefaultTheme{}
	expected := map[string]color.RGBA{
		"C8vb":  {0, 118, 236, 255},
		"C#8vb": {0, 59, 118, 255},
		"E":     {0, 236, 128, 255},
		"F#":    {0, 118, 64, 255},
		"C8va":  {236, 30, 0, 255},
		"nope":  {255, 255, 255, 255},
	}
	for name, c := range expected {
		if got := th.NoteColor(name); got != c {
			t.Errorf("%v: got %v, expected %v", name, got, c)
		}
	}
}
