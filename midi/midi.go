package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tunedex/tunedex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a standard midi file.
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf reader panics on some corrupt input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

// NoteEvents flattens every track into one chronological note on/off stream,
// accumulating each track's deltas into absolute ticks. Offs sort before ons
// at the same tick so back-to-back notes close cleanly before the next opens.
func NoteEvents(s *smf.SMF) []model.NoteEvent {
	var events []model.NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				kind := model.NoteOn
				if velocity == 0 {
					// running-status off
					kind = model.NoteOff
				}
				events = append(events, model.NoteEvent{Tick: absTicks, Kind: kind, Pitch: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.NoteEvent{Tick: absTicks, Kind: model.NoteOff, Pitch: key})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Tick != events[j].Tick {
			return events[i].Tick < events[j].Tick
		}
		return events[i].Kind == model.NoteOff && events[j].Kind == model.NoteOn
	})

	return events
}
