// Package visitor implements the double-dispatch framework (component D):
// one method per shape kind, a uniform default for scalar-like shapes, and
// explicit cycle/once-only tracking so recursive shapes and shared shapes
// are never emitted twice. The restjson emitters switch on shape kind
// themselves; the orchestrator uses EmissionTracker to gate emission.
package visitor

import (
	"fmt"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// Visitor routes each shape kind to a dedicated method. VisitDefault is the
// uniform fallback for scalar-like shapes (string, boolean, blob, timestamp,
// document, and the numeric kinds) per spec §4.D.
type Visitor interface {
	VisitStructure(s *model.Shape) error
	VisitUnion(s *model.Shape) error
	VisitList(s *model.Shape) error
	VisitSet(s *model.Shape) error
	VisitMap(s *model.Shape) error
	VisitOperation(s *model.Shape) error
	VisitDefault(s *model.Shape) error
}

// NotImplementedError is raised when a shape kind has no handler in an
// emitter (spec §7: "forces the extension author to provide a handler").
type NotImplementedError struct {
	Kind model.Kind
	Shape model.ShapeID
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("visitor: no handler for shape kind %q (shape %s)", e.Kind, e.Shape)
}

// Dispatch routes s to the appropriate Visitor method based on its kind.
func Dispatch(v Visitor, s *model.Shape) error {
	switch s.Kind {
	case model.KindStructure:
		return v.VisitStructure(s)
	case model.KindUnion:
		return v.VisitUnion(s)
	case model.KindList:
		return v.VisitList(s)
	case model.KindSet:
		return v.VisitSet(s)
	case model.KindMap:
		return v.VisitMap(s)
	case model.KindOperation:
		return v.VisitOperation(s)
	default:
		if model.IsScalar(s.Kind) {
			return v.VisitDefault(s)
		}
		return &NotImplementedError{Kind: s.Kind, Shape: s.ID}
	}
}

// Tracker is the explicitly-threaded visited set cyclic shapes use to avoid
// infinite recursion (spec §4.D). It is immutable: With returns a new
// Tracker carrying the extra id, so a caller can pass "the set as it was at
// this point in the recursion" down to children without affecting siblings.
type Tracker struct {
	seen map[model.ShapeID]bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker { return &Tracker{seen: map[model.ShapeID]bool{}} }

// Contains reports whether id has already been visited on this path.
func (t *Tracker) Contains(id model.ShapeID) bool { return t.seen[id] }

// With returns a new Tracker containing everything t contains plus id.
func (t *Tracker) With(id model.ShapeID) *Tracker {
	next := make(map[model.ShapeID]bool, len(t.seen)+1)
	for k := range t.seen {
		next[k] = true
	}
	next[id] = true
	return &Tracker{seen: next}
}

// EmissionTracker enforces "at most one top-level class per emitter
// category" (spec §3/§8) across an entire generation run. It is mutable and
// shared: unlike Tracker, the whole point is that emitting shape X's
// builder once must be visible to every later visit of X, anywhere in the
// shape closure.
type EmissionTracker struct {
	emitted map[emissionKey]bool
}

type emissionKey struct {
	id       model.ShapeID
	category string
}

// NewEmissionTracker returns an empty EmissionTracker.
func NewEmissionTracker() *EmissionTracker {
	return &EmissionTracker{emitted: map[emissionKey]bool{}}
}

// ShouldEmit reports whether (id, category) has not yet been emitted, and
// marks it emitted as a side effect. Callers use this as a gate:
//
//	if !tracker.ShouldEmit(shape.ID, "builder") { return nil }
func (t *EmissionTracker) ShouldEmit(id model.ShapeID, category string) bool {
	key := emissionKey{id: id, category: category}
	if t.emitted[key] {
		return false
	}
	t.emitted[key] = true
	return true
}
