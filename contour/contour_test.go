package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tunedex/tunedex/model"
)

var testConfig = Config{
	MidiLow:        48,
	MidiHigh:       95,
	Alphabet:       "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUV",
	TicksPerQuaver: 240,
}

func TestScaleIsUnityAtDefaultTempo(t *testing.T) {
	assert.Equal(t, 1.0, Scale(125))
}

func TestFoldStaysInsideBandAndKeepsPitchClass(t *testing.T) {
	assert := assert.New(t)
	for p := 0; p <= 127; p++ {
		folded := testConfig.Fold(uint8(p))
		assert.Greater(folded, testConfig.MidiLow)
		assert.Less(folded, testConfig.MidiHigh)
		assert.Equal(p%12, folded%12)
	}
}

func TestSingleQuaverEmitsOneSymbol(t *testing.T) {
	notes := []model.Note{{StartTick: 0, EndTick: 240, Pitch: 60}}
	got := Quantize(notes, 125, testConfig, Options{})
	assert.Equal(t, "m", got)
}

func TestIntegerMultipleRepeatsSymbol(t *testing.T) {
	notes := []model.Note{{StartTick: 0, EndTick: 480, Pitch: 60}}
	got := Quantize(notes, 125, testConfig, Options{})
	assert.Equal(t, "mm", got)
}

func TestShortNoteStillEmitsFullQuaver(t *testing.T) {
	notes := []model.Note{{StartTick: 0, EndTick: 100, Pitch: 60}}
	got := Quantize(notes, 125, testConfig, Options{})
	assert.Equal(t, "m", got)
}

func TestNoteInPaidForSlotIsSkipped(t *testing.T) {
	// The first note is short, so its emitted quaver runs to 240ms of
	// output. The second ends exactly when musicTime catches outputTime,
	// and musicTime == outputTime still skips.
	notes := []model.Note{
		{StartTick: 0, EndTick: 100, Pitch: 60},
		{StartTick: 100, EndTick: 240, Pitch: 64},
	}
	got := Quantize(notes, 125, testConfig, Options{})
	assert.Equal(t, "m", got)
}

func TestDriftCorrectionRoundsUpWhenBehind(t *testing.T) {
	// Durations 1.5, 2.5, 1.0 and ~2.08 quavers. The third note lands in a
	// slot the rounding already paid for; every other note rounds up
	// because the walk is behind after emitting.
	notes := []model.Note{
		{StartTick: 0, EndTick: 360, Pitch: 60},
		{StartTick: 360, EndTick: 960, Pitch: 62},
		{StartTick: 960, EndTick: 1200, Pitch: 64},
		{StartTick: 1200, EndTick: 1700, Pitch: 65},
	}
	got := Quantize(notes, 125, testConfig, Options{})
	assert.Equal(t, "mmooorrr", got)
}

func TestSymbolCountIsTempoRelative(t *testing.T) {
	// The quaver clock is derived from the same tempo as the notes, so a
	// one-quaver note is one symbol at any tempo.
	notes := []model.Note{{StartTick: 0, EndTick: 240, Pitch: 60}}
	assert.Equal(t, "m", Quantize(notes, 62.5, testConfig, Options{}))
	assert.Equal(t, "m", Quantize(notes, 250, testConfig, Options{}))
}

func TestWindowStartSkipsEarlyNotes(t *testing.T) {
	notes := []model.Note{
		{StartTick: 0, EndTick: 240, Pitch: 60},
		{StartTick: 240, EndTick: 480, Pitch: 64},
	}
	got := Quantize(notes, 125, testConfig, Options{StartSeconds: 0.3})
	assert.Equal(t, "q", got)
}

func TestWindowEndStopsWalk(t *testing.T) {
	notes := []model.Note{
		{StartTick: 0, EndTick: 240, Pitch: 60},
		{StartTick: 240, EndTick: 480, Pitch: 64},
	}
	// The second note starts past the window end, which terminates the walk.
	got := Quantize(notes, 125, testConfig, Options{EndSeconds: 0.2})
	assert.Equal(t, "m", got)
}

func TestNoNotesMakesEmptyContour(t *testing.T) {
	got := Quantize(nil, 125, testConfig, Options{})
	assert.Equal(t, "", got)
}
