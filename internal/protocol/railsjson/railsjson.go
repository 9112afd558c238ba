// Package railsjson is a second, deliberately partial protocol generator
// used to make the Open Question in spec §9 concrete: whether a protocol
// that cannot support greedy path labels should reject the whole operation
// at generation time or silently degrade. This generator takes the first
// option — it is not a second production protocol, only the fixture that
// proves Generator implementations are pluggable and that the registry's
// UnsupportedProtocolError and a generator's own binding errors are
// distinguishable failure modes.
package railsjson

import (
	"errors"
	"strings"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol/restjson"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// ProtocolID is the trait shape id this generator claims.
const ProtocolID = "rails.protocols#railsJson1"

// ErrGreedyLabelUnsupported is returned by GenerateBuilder when an
// operation's @http uri contains a "{label+}" greedy segment, which this
// protocol's router (unlike restJson1's) cannot express.
var ErrGreedyLabelUnsupported = errors.New("railsjson: greedy path labels are not supported; split the route or choose restJson1")

// Generator implements protocol.Generator for a Rails-router-flavored JSON
// protocol. Its HTTP binding semantics otherwise match restJson1, so every
// method but ProtocolID and GenerateBuilder delegates to an embedded
// restjson.Generator.
type Generator struct {
	*restjson.Generator
}

// New returns a railsJson1 Generator that names emitted symbols through sym.
func New(sym *symbols.Provider) *Generator {
	return &Generator{Generator: restjson.New(sym)}
}

func (g *Generator) ProtocolID() string { return ProtocolID }

func (g *Generator) GenerateBuilder(m *model.Model, svc *model.Service, op *model.Shape, w *writer.Writer) (protocol.BuilderResult, error) {
	httpTrait, ok := m.GetTrait(op, nil, model.TraitHTTP)
	if ok && httpTrait.HTTP != nil && strings.Contains(httpTrait.HTTP.URI, "+}") {
		return protocol.BuilderResult{}, ErrGreedyLabelUnsupported
	}
	return g.Generator.GenerateBuilder(m, svc, op, w)
}
