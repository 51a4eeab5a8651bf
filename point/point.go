package point

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Point is an event record: a mapping from Attribute to value. Values are
// usually ints, float64s or strings. Numbers compare by value whatever
// their kind, so 60 and 60.0 are equal; other values compare with ==, or
// structurally when their type is not comparable.
//
// A Point is treated as a value. With returns a modified copy; Set mutates
// in place and is only meant for annotating a point that a sequence already
// owns (see sequence.OSequence.Ref).
type Point map[Attribute]any

// Func maps one point to another. Funcs receive a copy and may mutate it.
type Func func(Point) Point

// ConflictError is returned by Unify when both points define an attribute
// with different values.
type ConflictError struct {
	Attribute Attribute
	Left      any
	Right     any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot unify %s: %v != %v", e.Attribute, e.Left, e.Right)
}

// Has reports whether the point defines a.
func (p Point) Has(a Attribute) bool {
	_, ok := p[a]
	return ok
}

// Get returns the value of a.
func (p Point) Get(a Attribute) (any, bool) {
	v, ok := p[a]
	return v, ok
}

// Int returns a as an int. It reports false when a is missing or is not a
// number. Floats are truncated.
func (p Point) Int(a Attribute) (int, bool) {
	v, ok := p[a]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// IntOr returns a as an int, or def when it is missing.
func (p Point) IntOr(a Attribute, def int) int {
	if n, ok := p.Int(a); ok {
		return n
	}
	return def
}

// Clone returns a shallow copy. Cloning a nil point yields an empty one.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// With returns a copy of p with a set to v.
func (p Point) With(a Attribute, v any) Point {
	c := p.Clone()
	c[a] = v
	return c
}

// Without returns a copy of p with a removed.
func (p Point) Without(a Attribute) Point {
	c := p.Clone()
	delete(c, a)
	return c
}

// Set assigns a in place.
func (p Point) Set(a Attribute, v any) {
	p[a] = v
}

// Unify returns the union of p and other. It fails with a *ConflictError if
// they disagree on a shared attribute. Neither input is modified.
func (p Point) Unify(other Point) (Point, error) {
	u := p.Clone()
	for _, a := range other.Attributes() {
		v := other[a]
		if existing, ok := u[a]; ok {
			if !sameValue(existing, v) {
				return nil, &ConflictError{Attribute: a, Left: existing, Right: v}
			}
			continue
		}
		u[a] = v
	}
	return u, nil
}

func number(v any) (i int64, f float64, isFloat, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, false, true
	case int8:
		return int64(n), 0, false, true
	case int16:
		return int64(n), 0, false, true
	case int32:
		return int64(n), 0, false, true
	case int64:
		return n, 0, false, true
	case uint8:
		return int64(n), 0, false, true
	case uint16:
		return int64(n), 0, false, true
	case uint32:
		return int64(n), 0, false, true
	case float32:
		return 0, float64(n), true, true
	case float64:
		return 0, n, true, true
	}
	return 0, 0, false, false
}

func sameValue(a, b any) bool {
	ai, af, aFloat, aok := number(a)
	bi, bf, bFloat, bok := number(b)
	switch {
	case aok && bok && !aFloat && !bFloat:
		return ai == bi
	case aok && bok:
		if !aFloat {
			af = float64(ai)
		}
		if !bFloat {
			bf = float64(bi)
		}
		return af == bf
	case a == nil || b == nil:
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// Tuple projects the point onto attrs. Missing attributes come back as nil.
func (p Point) Tuple(attrs ...Attribute) []any {
	res := make([]any, len(attrs))
	for i, a := range attrs {
		res[i] = p[a]
	}
	return res
}

// Equal reports structural equality.
func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !sameValue(ov, v) {
			return false
		}
	}
	return true
}

// Attributes returns the attributes p defines in registration order.
func (p Point) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(p))
	for a := range p {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i] < attrs[j]
	})
	return attrs
}

func (p Point) String() string {
	parts := make([]string, 0, len(p))
	for _, a := range p.Attributes() {
		parts = append(parts, fmt.Sprintf("%s: %v", a, p[a]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
