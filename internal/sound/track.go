package sound

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Track is a recorded backing track that follows the game's pause state.
type Track struct {
	Path string

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, err
	}
	switch filepath.Ext(path) {
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	f.Close()
	return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", path)
}

func OpenTrack(path string) (*Track, error) {
	streamer, format, err := decode(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open track: %w", err)
	}
	if err := InitSpeaker(); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to initialize speaker: %w", err)
	}
	return &Track{
		Path:     path,
		streamer: streamer,
		format:   format,
	}, nil
}

// Play starts the track from the beginning.
func (t *Track) Play() error {
	speaker.Lock()
	if nil != t.ctrl {
		t.ctrl.Streamer = nil
	}
	err := t.streamer.Seek(0)
	speaker.Unlock()
	if nil != err {
		return fmt.Errorf("unable to rewind %v: %w", t.Path, err)
	}
	t.ctrl = &beep.Ctrl{Streamer: beep.Resample(4, t.format.SampleRate, SampleRate, t.streamer)}
	speaker.Play(t.ctrl)
	return nil
}

func (t *Track) Pause() {
	t.setPaused(true)
}

func (t *Track) Resume() {
	t.setPaused(false)
}

// Stop silences the track until the next Play.
func (t *Track) Stop() {
	if nil == t.ctrl {
		return
	}
	speaker.Lock()
	t.ctrl.Streamer = nil
	speaker.Unlock()
	t.ctrl = nil
}

func (t *Track) setPaused(paused bool) {
	if nil == t.ctrl {
		return
	}
	speaker.Lock()
	t.ctrl.Paused = paused
	speaker.Unlock()
}

// Length of the track in seconds.
func (t *Track) Length() float64 {
	return t.format.SampleRate.D(t.streamer.Len()).Seconds()
}

func (t *Track) Close() error {
	t.Stop()
	return t.streamer.Close()
}
