package constants

import "os"

// Inclusive extremes of the pitch band the downstream engine samples from its
// spectrogram, which is resampled to be linear in midi space. Contours use
// one symbol per pitch in this band.
const (
	MidiHigh = 95 // B6 (1975.5 Hz), just over two octaves above violin open A
	MidiLow  = 48 // C2 (130.81 Hz), an octave below middle C
	MidiNum  = MidiHigh - MidiLow + 1
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MidiMap is the contour symbol alphabet: abc...ABC, one character per
// pitch in the band.
var MidiMap = asciiLetters[:MidiNum]

// DefaultTempo is in crotchet beats per minute. abc2midi applies tempo via a
// midi tempo event rather than by changing event times, so every setting
// renders with the same tick timing and tempo is applied when rescaling.
const DefaultTempo = 125

// TicksPerQuaver comes from abc2midi writing 480 ticks per crotchet with the
// L:1/8 unit note length. At DefaultTempo the tick-to-millisecond scale
// factor is exactly 1.0.
const TicksPerQuaver = 240

const TheSessionDataURL = "https://raw.githubusercontent.com/adactio/TheSession-data/main/json/%v.json"

const (
	DataFileName = "tunedex-data.json"
	MetaFileName = "tunedex-meta.json"
)

func GetDataDir() string {
	path := os.Getenv("TUNEDEX_DATA_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetAbc2midiPath() string {
	path := os.Getenv("ABC2MIDI_PATH")
	if path != "" {
		return path
	}
	return "abc2midi"
}

func GetS3Bucket() string {
	bucket := os.Getenv("TUNEDEX_S3_BUCKET")
	if bucket != "" {
		return bucket
	}

	panic("TUNEDEX_S3_BUCKET environment variable is not set!")
}

func GetS3Region() string {
	region := os.Getenv("TUNEDEX_S3_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// GetS3Endpoint is only set when publishing against a local stack.
func GetS3Endpoint() string {
	return os.Getenv("TUNEDEX_S3_ENDPOINT")
}
