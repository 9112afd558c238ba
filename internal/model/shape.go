// Package model provides the read-only semantic-model facade (component A):
// shape lookup, member iteration, trait resolution and closure traversal over
// a Smithy-style model. The model itself (the loader, the trait library) is
// an external collaborator; this package only describes and queries it.
package model

import "sort"

// Kind enumerates the shape kinds a model can contain.
type Kind string

const (
	KindService   Kind = "service"
	KindOperation Kind = "operation"
	KindStructure Kind = "structure"
	KindUnion     Kind = "union"
	KindList      Kind = "list"
	KindSet       Kind = "set"
	KindMap       Kind = "map"
	KindString    Kind = "string"
	KindInteger   Kind = "integer"
	KindShort     Kind = "short"
	KindLong      Kind = "long"
	KindByte      Kind = "byte"
	KindFloat     Kind = "float"
	KindDouble    Kind = "double"
	KindBigInt    Kind = "bigInteger"
	KindBigDec    Kind = "bigDecimal"
	KindBoolean   Kind = "boolean"
	KindBlob      Kind = "blob"
	KindDocument  Kind = "document"
	KindTimestamp Kind = "timestamp"
	KindMember    Kind = "member"
)

// numericKinds mirrors "integer/short/long/byte, float/double, bigInteger,
// bigDecimal" from spec §3 so visitors can treat them uniformly.
var numericKinds = map[Kind]bool{
	KindInteger: true, KindShort: true, KindLong: true, KindByte: true,
	KindFloat: true, KindDouble: true, KindBigInt: true, KindBigDec: true,
}

// IsNumeric reports whether k is one of the numeric scalar kinds.
func IsNumeric(k Kind) bool { return numericKinds[k] }

// IsScalar reports whether k has no members and no target (a "default
// fallback" shape per the visitor framework, spec §4.D).
func IsScalar(k Kind) bool {
	switch k {
	case KindString, KindBoolean, KindBlob, KindDocument, KindTimestamp:
		return true
	}
	return IsNumeric(k)
}

// ShapeID is a namespace-qualified, globally unique, sortable shape
// identifier (spec §3).
type ShapeID struct {
	Namespace string
	Name      string
}

// String renders the canonical "namespace#name" form used for sorting and
// diagnostics.
func (id ShapeID) String() string {
	if id.Namespace == "" {
		return id.Name
	}
	return id.Namespace + "#" + id.Name
}

// Less orders ShapeIDs by their string form, giving the deterministic sort
// spec §3 requires ("Operations across a service are sorted by name").
func (id ShapeID) Less(other ShapeID) bool { return id.String() < other.String() }

// SortShapeIDs sorts ids in place by their canonical string form.
func SortShapeIDs(ids []ShapeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}

// Member is a named edge from a structure/union/operation to a target shape,
// carrying its own trait set. Members are insertion-ordered in the model.
type Member struct {
	Name   string
	Target ShapeID
	Traits []Trait
}

// Shape is a single node in the semantic model.
type Shape struct {
	ID   ShapeID
	Kind Kind

	// Members is the insertion-ordered member list for structure, union
	// and map shapes; maps carry "key" and "value" entries. Operations
	// reference their input/output through Input/Output instead.
	Members []Member

	// Target is the element shape of a list or set. Maps have no separate
	// key/value fields; their key and value are the "key" and "value"
	// Members.
	Target ShapeID

	Traits []Trait

	// For KindOperation only:
	Input   *ShapeID
	Output  *ShapeID
	Errors  []ShapeID
	HasHTTP bool
}

// MemberByName returns the member with the given name, if present.
func (s *Shape) MemberByName(name string) (Member, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Service is the ordered closure of operations exposed by a service shape.
type Service struct {
	ID         ShapeID
	Operations []ShapeID
	Traits     []Trait
}
