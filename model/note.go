package model

type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

// NoteEvent is one timed on/off event from a rendered performance timeline.
type NoteEvent struct {
	Tick  int64
	Kind  EventKind
	Pitch uint8
}

// Note is a paired on/off with bounds in the tick domain. EndTick >= StartTick.
type Note struct {
	StartTick int64
	EndTick   int64
	Pitch     uint8
}
