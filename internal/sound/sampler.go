package sound

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"git.lost.host/meutraa/nota/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is what the speaker runs at. Everything is resampled to it.
const SampleRate beep.SampleRate = 44100

var speakerOnce struct {
	sync.Once
	err error
}

// InitSpeaker starts the speaker the first time it is called.
func InitSpeaker() error {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(SampleRate, SampleRate.N(time.Second/60))
	})
	return speakerOnce.err
}

// Sampler plays one buffered WAV file per note. Playing a note that is
// already sounding on the same channel starts it over.
type Sampler struct {
	Log *log.Logger

	samples map[string]*beep.Buffer
	playing map[string]*beep.Ctrl
	play    func(...beep.Streamer)
}

// OpenSampler buffers <dir>/<id>.wav for each of ids. A missing sample is
// logged and that note stays silent.
func OpenSampler(dir string, ids []string, logger *log.Logger) (*Sampler, error) {
	if err := InitSpeaker(); nil != err {
		return nil, fmt.Errorf("unable to initialize speaker: %w", err)
	}
	s := newSampler(logger)
	s.play = speaker.Play
	for _, id := range ids {
		buffer, err := loadSample(filepath.Join(dir, id+".wav"))
		if nil != err {
			logger.Println(fmt.Errorf("no sample for %v: %w: %v", id, game.ErrConfiguration, err))
			continue
		}
		s.samples[id] = buffer
	}
	if len(s.samples) == 0 {
		return nil, fmt.Errorf("no samples found in %v: %w", dir, game.ErrConfiguration)
	}
	return s, nil
}

func newSampler(logger *log.Logger) *Sampler {
	return &Sampler{
		Log:     logger,
		samples: map[string]*beep.Buffer{},
		playing: map[string]*beep.Ctrl{},
		play:    func(...beep.Streamer) {},
	}
}

func loadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if nil != err {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Resample(4, format.SampleRate, SampleRate, streamer))
	return buffer, nil
}

// Add makes buffer the sample for id.
func (s *Sampler) Add(id string, buffer *beep.Buffer) {
	s.samples[id] = buffer
}

func (s *Sampler) PlayNote(id string, channel int) {
	buffer, ok := s.samples[id]
	if !ok {
		return
	}
	k := fmt.Sprint(id, "/", channel)
	s.stop(k)
	ctrl := &beep.Ctrl{Streamer: buffer.Streamer(0, buffer.Len())}
	s.playing[k] = ctrl
	s.play(ctrl)
}

func (s *Sampler) StopNote(id string, channel int) {
	s.stop(fmt.Sprint(id, "/", channel))
}

// stop drains a control so the mixer drops it.
func (s *Sampler) stop(k string) {
	ctrl, ok := s.playing[k]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(s.playing, k)
}

func (s *Sampler) Sounding() int {
	return len(s.playing)
}

func (s *Sampler) Close() error {
	for k := range s.playing {
		s.stop(k)
	}
	return nil
}
