package model

type Pitches = []int

// Chord is the set of pitches sounding from Offset until the next change.
type Chord struct {
	Offset  int     `json:"offset"`
	Pitches Pitches `json:"pitches"`

	// FormedByNoteOn is false when the chord is what remains after a
	// release.
	FormedByNoteOn bool `json:"formed_by_note_on"`
}
