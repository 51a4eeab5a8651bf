package point

import (
	"fmt"
	"sync"
)

// Attribute names one property of a Point. Attributes are interned: the
// same name always yields the same Attribute, so they compare with == and
// work as map keys.
type Attribute uint16

type registry struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]Attribute
}

var attributes = &registry{byName: make(map[string]Attribute)}

// The attributes the parser, the transforms and the MIDI codec agree on.
var (
	Offset   = Register("offset_64")
	Duration = Register("duration_64")
	Pitch    = Register("midi_pitch")
	Velocity = Register("velocity")

	// Degree is a 1-based scale step, resolved against a theory.Key.
	Degree = Register("degree")
	// ScalePitch is a position on the line of fifths (D = 0), see theory.
	ScalePitch = Register("pitch")
	Octave     = Register("octave")
	Lilypond   = Register("lilypond")
)

// Register interns name and returns its Attribute. Registering a name twice
// returns the first Attribute. Registration is meant to happen in package
// level var blocks so the set is fixed once main starts.
func Register(name string) Attribute {
	attributes.mu.Lock()
	defer attributes.mu.Unlock()

	if a, ok := attributes.byName[name]; ok {
		return a
	}
	a := Attribute(len(attributes.names))
	attributes.names = append(attributes.names, name)
	attributes.byName[name] = a
	return a
}

// Lookup finds a registered attribute by name.
func Lookup(name string) (Attribute, bool) {
	attributes.mu.RLock()
	defer attributes.mu.RUnlock()
	a, ok := attributes.byName[name]
	return a, ok
}

func (a Attribute) String() string {
	attributes.mu.RLock()
	defer attributes.mu.RUnlock()
	if int(a) < len(attributes.names) {
		return attributes.names[a]
	}
	return fmt.Sprintf("attribute(%d)", uint16(a))
}
