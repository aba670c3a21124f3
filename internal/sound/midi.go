package sound

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/nota/internal/game"
	"github.com/rakyll/portmidi"
)

const (
	noteOn        = 0x90
	noteOff       = 0x80
	programChange = 0xC0

	velocity = 127

	// The applause is General MIDI's applause patch on a channel of its own
	ApplauseChannel = 15
	ApplausePatch   = 126
	ApplauseKey     = 39
)

type shortWriter interface {
	WriteShort(status, data1, data2 int64) error
}

// Midi sends notes to a MIDI output. A note already sounding on a
// channel is not started again until it is stopped.
type Midi struct {
	Log *log.Logger

	out      shortWriter
	stream   *portmidi.Stream
	sounding map[int]bool
}

// OpenMidi opens device, or the default output when device is negative,
// and selects instrument on each of channels.
func OpenMidi(device, instrument int, channels []int, logger *log.Logger) (*Midi, error) {
	if err := portmidi.Initialize(); nil != err {
		return nil, fmt.Errorf("unable to initialize portmidi: %w", err)
	}
	id := portmidi.DefaultOutputDeviceID()
	if device >= 0 {
		id = portmidi.DeviceID(device)
	}
	if info := portmidi.Info(id); nil == info || !info.IsOutputAvailable {
		portmidi.Terminate()
		return nil, fmt.Errorf("midi device %v is not an output: %w", id, game.ErrConfiguration)
	}
	stream, err := portmidi.NewOutputStream(id, 1024, 0)
	if nil != err {
		portmidi.Terminate()
		return nil, fmt.Errorf("unable to open midi output %v: %w", id, err)
	}
	logger.Printf("midi output: %v\n", portmidi.Info(id).Name)

	m := newMidi(stream, logger)
	m.stream = stream
	for _, ch := range channels {
		m.SetInstrument(ch, instrument)
	}
	m.SetInstrument(ApplauseChannel, ApplausePatch)
	return m, nil
}

func newMidi(out shortWriter, logger *log.Logger) *Midi {
	return &Midi{
		Log:      logger,
		out:      out,
		sounding: map[int]bool{},
	}
}

// Outputs lists the MIDI outputs by device id.
func Outputs() map[int]string {
	outputs := map[int]string{}
	if err := portmidi.Initialize(); nil != err {
		return outputs
	}
	defer portmidi.Terminate()
	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if nil != info && info.IsOutputAvailable {
			outputs[i] = fmt.Sprintf("%v (%v)", info.Name, info.Interface)
		}
	}
	return outputs
}

func (m *Midi) write(status, data1, data2 int) {
	if err := m.out.WriteShort(int64(status), int64(data1), int64(data2)); nil != err {
		m.Log.Println("unable to write midi message", err)
	}
}

func (m *Midi) SetInstrument(channel, program int) {
	m.write(programChange|channel&0x0F, program&0x7F, 0)
}

// key resolves a note identity to a MIDI key and the channel it plays on.
func key(id string, channel int) (int, int, bool) {
	if id == game.Applause {
		return ApplauseKey, ApplauseChannel, true
	}
	k := game.MidiNumber(id)
	return k, channel & 0x0F, k >= 0
}

func (m *Midi) PlayNote(id string, channel int) {
	k, ch, ok := key(id, channel)
	if !ok {
		m.Log.Println(fmt.Errorf("no midi key for %q: %w", id, game.ErrConfiguration))
		return
	}
	if m.sounding[k+ch*128] {
		return
	}
	m.sounding[k+ch*128] = true
	m.write(noteOn|ch, k, velocity)
}

func (m *Midi) StopNote(id string, channel int) {
	k, ch, ok := key(id, channel)
	if !ok || !m.sounding[k+ch*128] {
		return
	}
	delete(m.sounding, k+ch*128)
	m.write(noteOff|ch, k, 0)
}

// Close silences anything still sounding and releases the device.
func (m *Midi) Close() error {
	for id := range m.sounding {
		m.write(noteOff|id/128, id%128, 0)
	}
	m.sounding = map[int]bool{}
	if nil == m.stream {
		return nil
	}
	err := m.stream.Close()
	portmidi.Terminate()
	return err
}
