package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func TestTrackLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backing.wav")
	f, err := os.Create(path)
	if nil != err {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(33075), format); nil != err {
		t.Fatal(err)
	}
	f.Close()

	streamer, format, err := decode(path)
	if nil != err {
		t.Fatal(err)
	}
	track := &Track{Path: path, streamer: streamer, format: format}
	if track.Length() != 1.5 {
		t.Errorf("length %v", track.Length())
	}
	if err := track.Close(); nil != err {
		t.Error(err)
	}
}

func TestTrackRejectsUnknownFormat(t *testing.T) {
	if _, _, err := decode(filepath.Join(t.TempDir(), "backing.flac")); nil == err {
		t.Fail()
	}
}
