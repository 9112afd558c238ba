package model

// Model is the read-only query facade over a semantic model (component A).
// It never mutates, and is safe to share across a single generation run; the
// generator treats it as read-only for the lifetime of a Generate call
// (spec §5).
type Model struct {
	shapes   map[ShapeID]*Shape
	services map[ShapeID]*Service
}

// New wraps shapes and services into a queryable Model. It does not copy the
// maps; callers must not mutate them afterwards.
func New(shapes map[ShapeID]*Shape, services map[ShapeID]*Service) *Model {
	return &Model{shapes: shapes, services: services}
}

// ExpectShape returns the shape for id, or an *IntegrityError if absent.
func (m *Model) ExpectShape(id ShapeID) (*Shape, error) {
	s, ok := m.shapes[id]
	if !ok {
		return nil, NewIntegrityError(id, "shape not found in model")
	}
	return s, nil
}

// ExpectService returns the service for id, or an *IntegrityError if absent.
func (m *Model) ExpectService(id ShapeID) (*Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, NewIntegrityError(id, "service not found in model")
	}
	return s, nil
}

// Members returns shape's member list. Operations never carry it directly
// (input/output are separate shapes); all other kinds do, possibly empty.
func (m *Model) Members(s *Shape) []Member { return s.Members }

// HasTrait reports whether kind is present on shape or member. When member is
// non-nil, the member's own trait set is consulted; if absent there, the
// facade falls back to the target shape's traits per spec §4.A's resolution
// rule ("when a trait applies to both the member and the target shape, the
// member's value wins; if absent on the member, fall back to the target").
func (m *Model) HasTrait(shape *Shape, member *Member, kind TraitKind) bool {
	if member != nil {
		if HasTraitIn(member.Traits, kind) {
			return true
		}
		target, err := m.ExpectShape(member.Target)
		if err != nil {
			return false
		}
		return HasTraitIn(target.Traits, kind)
	}
	return HasTraitIn(shape.Traits, kind)
}

// GetTrait returns the resolved trait value for kind, following the same
// member-then-target fallback as HasTrait.
func (m *Model) GetTrait(shape *Shape, member *Member, kind TraitKind) (Trait, bool) {
	if member != nil {
		if t, ok := findTrait(member.Traits, kind); ok {
			return t, true
		}
		target, err := m.ExpectShape(member.Target)
		if err == nil {
			if t, ok := findTrait(target.Traits, kind); ok {
				return t, true
			}
		}
		return Trait{}, false
	}
	return findTrait(shape.Traits, kind)
}

// TopDownOperations returns the service's operations sorted by shape name,
// satisfying "Operations across a service are sorted by name before
// emission so output is deterministic" (spec §3).
func (m *Model) TopDownOperations(svc *Service) ([]*Shape, error) {
	ids := make([]ShapeID, len(svc.Operations))
	copy(ids, svc.Operations)
	SortShapeIDs(ids)
	ops := make([]*Shape, 0, len(ids))
	for _, id := range ids {
		op, err := m.ExpectShape(id)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Walk performs a deterministic DFS over the shape closure reachable from
// root, visiting each shape exactly once (spec §4.A, §5). The walk order is:
// the root itself, then its members/target/key/value in model order,
// recursively. Cycles are broken by the visited set: a shape already seen in
// this particular Walk call is not re-emitted into the sequence, but IS
// still reachable by the caller via ExpectShape.
func (m *Model) Walk(root ShapeID) ([]*Shape, error) {
	visited := make(map[ShapeID]bool)
	var order []*Shape
	var visit func(id ShapeID) error
	visit = func(id ShapeID) error {
		if visited[id] {
			return nil
		}
		visited[id] = true
		s, err := m.ExpectShape(id)
		if err != nil {
			return err
		}
		order = append(order, s)
		for _, member := range s.Members {
			if err := visit(member.Target); err != nil {
				return err
			}
		}
		switch s.Kind {
		case KindList, KindSet:
			if err := visit(s.Target); err != nil {
				return err
			}
		case KindOperation:
			if s.Input != nil {
				if err := visit(*s.Input); err != nil {
					return err
				}
			}
			if s.Output != nil {
				if err := visit(*s.Output); err != nil {
					return err
				}
			}
			for _, e := range s.Errors {
				if err := visit(e); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}
