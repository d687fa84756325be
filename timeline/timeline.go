// Package timeline pairs raw note on/off events into discrete notes.
package timeline

import "github.com/tunedex/tunedex/model"

// Build walks the chronological event stream for one setting and pairs each
// note-on with its note-off. A second on for a pitch that is already open is
// collapsed into the first (notated pitch collisions become one note) and an
// off with no matching on is dropped. Notes come out in off-event order, so
// end ticks are non-decreasing but start ticks may interleave when voices
// overlap.
func Build(events []model.NoteEvent) []model.Note {
	open := make(map[uint8]int64)
	var notes []model.Note

	for _, evt := range events {
		switch evt.Kind {
		case model.NoteOn:
			if _, ok := open[evt.Pitch]; !ok {
				open[evt.Pitch] = evt.Tick
			}
		case model.NoteOff:
			start, ok := open[evt.Pitch]
			if !ok {
				continue
			}
			delete(open, evt.Pitch)
			notes = append(notes, model.Note{
				StartTick: start,
				EndTick:   evt.Tick,
				Pitch:     evt.Pitch,
			})
		}
	}

	return notes
}
