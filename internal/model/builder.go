package model

// Builder assembles a Model in memory. It is the concrete, swappable
// "model loader" collaborator spec.md treats as external — tests and the
// jsonmodel package both produce a *Model through a Builder rather than
// constructing the map literals directly, so every caller goes through the
// same registration path (a duplicate shape ID replaces the earlier shape).
type Builder struct {
	shapes   map[ShapeID]*Shape
	services map[ShapeID]*Service
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		shapes:   make(map[ShapeID]*Shape),
		services: make(map[ShapeID]*Service),
	}
}

// AddShape registers s, keyed by s.ID. A later call with the same ID
// overwrites the earlier one (last write wins), mirroring how a model
// loader would apply patches/overrides before handing off to the facade.
func (b *Builder) AddShape(s *Shape) *Builder {
	b.shapes[s.ID] = s
	return b
}

// AddService registers svc, keyed by svc.ID.
func (b *Builder) AddService(svc *Service) *Builder {
	b.services[svc.ID] = svc
	return b
}

// Build finalizes the Builder into a read-only Model.
func (b *Builder) Build() *Model {
	return New(b.shapes, b.services)
}
