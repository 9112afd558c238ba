package restjson

import (
	"github.com/AndrewFossAWS/smithy-ruby/internal/middleware"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/transport"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// ProtocolID is the trait shape id this generator claims.
const ProtocolID = "aws.protocols#restJson1"

// Generator implements protocol.Generator for the restJson1 wire protocol:
// JSON request/response bodies over HTTP, with member bindings to path
// labels, query, and headers per their HTTP binding traits.
type Generator struct {
	sym       *symbols.Provider
	transport *transport.ApplicationTransport
}

// New returns a restJson1 Generator that names emitted symbols through sym.
func New(sym *symbols.Provider) *Generator {
	return &Generator{sym: sym, transport: transport.DefaultHTTP()}
}

func (g *Generator) ProtocolID() string { return ProtocolID }

func (g *Generator) ApplicationTransport() *transport.ApplicationTransport { return g.transport }

func (g *Generator) GenerateBuilder(m *model.Model, _ *model.Service, op *model.Shape, w *writer.Writer) (protocol.BuilderResult, error) {
	return GenerateBuilder(m, op, g.sym, w)
}

func (g *Generator) GenerateParser(m *model.Model, svc *model.Service, op *model.Shape, w *writer.Writer) (protocol.ParserResult, error) {
	return GenerateParser(m, svc, op, g.sym, w)
}

func (g *Generator) GenerateStubs(m *model.Model, shape *model.Shape, w *writer.Writer) error {
	return GenerateStubs(m, shape, g.sym, w)
}

// GenerateType appends shape's data type to w (types.rb). Not part of
// protocol.Generator: type emission is the same shape-to-Struct mapping
// regardless of wire protocol, but with only one real protocol in this
// generator it lives here rather than behind a second interface.
func (g *Generator) GenerateType(m *model.Model, shape *model.Shape, w *writer.Writer) error {
	return GenerateType(m, shape, g.sym, w)
}

// GenerateValidator appends shape's `validate!` method to w (validators.rb).
func (g *Generator) GenerateValidator(m *model.Model, shape *model.Shape, w *writer.Writer) error {
	return GenerateValidator(m, shape, g.sym, w)
}

// GenerateParams appends shape's `build` normalizer to w (params.rb).
func (g *Generator) GenerateParams(m *model.Model, shape *model.Shape, w *writer.Writer) error {
	return GenerateParams(m, shape, g.sym, w)
}

// GenerateOperationStub appends op's response-stub builder to w (stubs.rb,
// spec §4.J's "per-operation stub(response, stub) generator").
func (g *Generator) GenerateOperationStub(m *model.Model, op *model.Shape, w *writer.Writer) error {
	return GenerateOperationStub(m, op, g.sym, w)
}

func (g *Generator) GenerateErrors(m *model.Model, svc *model.Service, w *writer.Writer) error {
	return GenerateErrors(m, svc, g.sym, w)
}

func (g *Generator) ClientMiddleware(*model.Model, *model.Service, *model.Shape) []middleware.Record {
	return nil
}

func (g *Generator) ClientConfig() []transport.ConfigKey { return nil }

// Symbols exposes the provider this generator names classes through. The
// orchestrator does not call it: its operation-stub pass (spec §4.J's
// per-operation stub(response, stub) generator, which the
// protocol.Generator contract doesn't model) calls GenerateOperationStub.
func (g *Generator) Symbols() *symbols.Provider { return g.sym }
