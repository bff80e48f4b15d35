package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/rs/zerolog"
)

// newTestPlayer swaps the speaker for recorders.
func newTestPlayer(opts Options) (*Player, *int, *[]beep.SampleRate) {
	p := NewPlayer(zerolog.Nop(), opts)
	plays := 0
	var inits []beep.SampleRate
	p.initSpeaker = func(sr beep.SampleRate, _ int) error {
		inits = append(inits, sr)
		return nil
	}
	p.play = func(s ...beep.Streamer) { plays += len(s) }
	return p, &plays, &inits
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, smp := range buf[:k] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestToneLengthAndLevel(t *testing.T) {
	sr := beep.SampleRate(8000)
	n, peak := drain(newTone(sr, 440, 250*time.Millisecond, 0.5))
	if n != 2000 {
		t.Errorf("samples = %d, want 2000", n)
	}
	if peak <= 0.3 || peak > 0.5 {
		t.Errorf("peak = %f, want in (0.3, 0.5]", peak)
	}
}

func TestToneFadesAtEdges(t *testing.T) {
	tn := newTone(beep.SampleRate(8000), 440, time.Second, 1)
	buf := make([][2]float64, 1)
	tn.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, plays, inits := newTestPlayer(Options{Enabled: false})
	if err := p.Chime(); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
	if *plays != 0 || len(*inits) != 0 {
		t.Error("disabled player touched the speaker")
	}
}

func TestBuiltinChimeInitialisesSpeakerOnce(t *testing.T) {
	p, plays, inits := newTestPlayer(Options{Enabled: true})
	for i := 0; i < 3; i++ {
		if err := p.Chime(); err != nil {
			t.Fatal(err)
		}
	}
	if *plays != 3 {
		t.Errorf("plays = %d, want 3", *plays)
	}
	if len(*inits) != 1 || (*inits)[0] != defaultSampleRate {
		t.Errorf("speaker inits = %v", *inits)
	}
	if p.buffer.Len() == 0 {
		t.Error("chime buffer is empty")
	}
}

func TestChimeFromWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "done.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, newTone(format.SampleRate, 660, 100*time.Millisecond, 0.3), format); err != nil {
		t.Fatal(err)
	}
	f.Close()

	p, plays, inits := newTestPlayer(Options{Enabled: true, File: path})
	if err := p.Chime(); err != nil {
		t.Fatal(err)
	}
	if *plays != 1 {
		t.Errorf("plays = %d, want 1", *plays)
	}
	if len(*inits) != 1 || (*inits)[0] != 22050 {
		t.Errorf("speaker inits = %v", *inits)
	}
	if got := p.buffer.Len(); got != format.SampleRate.N(100*time.Millisecond) {
		t.Errorf("buffer len = %d", got)
	}
}

func TestMissingFileDegradesToError(t *testing.T) {
	p, plays, _ := newTestPlayer(Options{Enabled: true, File: filepath.Join(t.TempDir(), "nope.wav")})
	if err := p.Chime(); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := p.Chime(); err == nil {
		t.Fatal("error should be sticky")
	}
	if *plays != 0 {
		t.Error("nothing should play")
	}
}
