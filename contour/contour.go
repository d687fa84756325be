// Package contour turns a note sequence into an octave-folded, quaver
// quantized melodic contour string. Quantization is deliberately lossy: the
// downstream engine does approximate string matching, so a small fixed
// alphabet on a uniform grid beats rhythmic fidelity.
package contour

import (
	"math"

	"github.com/tunedex/tunedex/model"
)

// Config fixes the pitch band and symbol alphabet. It is passed in rather
// than read from a global so tests can swap the band.
type Config struct {
	MidiLow        int
	MidiHigh       int
	Alphabet       string
	TicksPerQuaver int64
}

// Options windows the quantizer walk to [StartSeconds, EndSeconds).
// Zero means unbounded on that side.
type Options struct {
	StartSeconds float64
	EndSeconds   float64
}

// Scale returns the tick-to-millisecond factor for a tempo in crotchet bpm.
// The 480000 comes from 125 bpm being the default tempo with the hard coded
// tick convention (240 ticks = 1 quaver, so 480000us = 1 crotchet).
func Scale(tempo float64) float64 {
	usPerCrotchet := 60000000.0 / tempo
	return usPerCrotchet / 480000.0
}

// Fold maps an absolute pitch into the band by octave steps. Both endpoints
// are excluded so there is frequency content on each side of the pitch bin
// the engine resolves the symbol back to.
func (c Config) Fold(pitch uint8) int {
	p := int(pitch)
	for p <= c.MidiLow {
		p += 12
	}
	for p >= c.MidiHigh {
		p -= 12
	}
	return p
}

func (c Config) symbol(pitch uint8) byte {
	return c.Alphabet[c.Fold(pitch)-c.MidiLow]
}

// Quantize walks a setting's notes against a uniform quaver clock and emits
// one symbol per quaver. Two clocks run: musicTime is the true elapsed
// duration of the notes consumed, outputTime the duration emitted so far.
// Rounding direction is picked per note to keep the two from drifting more
// than about half a quaver apart over a whole tune.
func Quantize(notes []model.Note, tempo float64, cfg Config, opts Options) string {
	scale := Scale(tempo)
	quaver := scale * float64(cfg.TicksPerQuaver)

	var out []byte
	var musicTime, outputTime float64

	for _, note := range notes {
		start := scale * float64(note.StartTick)
		end := scale * float64(note.EndTick)
		duration := end - start

		// Note lies entirely before the window: advance both clocks past it.
		if opts.StartSeconds > 0 && end < 1000*opts.StartSeconds {
			musicTime = end
			outputTime = end
			continue
		}
		if opts.EndSeconds > 0 && start >= 1000*opts.EndSeconds {
			break
		}
		musicTime += duration

		// Already covered by emitted output. This is how overlapping voices
		// collapse onto a monophonic contour: a note in a time slot that is
		// already paid for contributes nothing.
		if musicTime <= outputTime {
			continue
		}

		symbol := cfg.symbol(note.Pitch)
		rel := duration / quaver
		switch {
		case rel == math.Trunc(rel):
			outputTime += duration
			out = appendRepeated(out, symbol, int(rel))
		case rel < 1.0:
			// In the output everything is at least a quaver.
			outputTime += quaver
			out = append(out, symbol)
		default:
			// Behind schedule rounds up, ahead rounds down.
			var count int
			if musicTime > outputTime {
				count = int(math.Ceil(rel))
			} else {
				count = int(math.Floor(rel))
			}
			outputTime += float64(count) * quaver
			out = appendRepeated(out, symbol, count)
		}
	}

	return string(out)
}

func appendRepeated(out []byte, symbol byte, count int) []byte {
	for i := 0; i < count; i++ {
		out = append(out, symbol)
	}
	return out
}
