// Package protocol defines the protocol-generator plugin contract
// (component G): the interface a wire protocol implements to plug HTTP
// binding codegen into the orchestrator, and the registry operators select
// from by protocol trait.
package protocol

import (
	"fmt"

	"github.com/AndrewFossAWS/smithy-ruby/internal/middleware"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/transport"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// UnsupportedProtocolError reports that no registered Generator claims the
// requested protocol id (spec §4.G, §6: exit code on "no matching
// protocol generator").
type UnsupportedProtocolError struct {
	ProtocolID string
	Known      []string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol %q (known: %v)", e.ProtocolID, e.Known)
}

// BuilderResult names the builder class an operation's Build middleware
// step invokes, once GenerateBuilder has appended its source to the
// shared builders file.
type BuilderResult struct {
	BuilderClass string
}

// ParserResult names the parser class and the modeled error classes an
// operation's Parse middleware step needs, once GenerateParser has
// appended its source to the shared parsers file.
type ParserResult struct {
	ParserClass  string
	ErrorClasses []string
}

// Generator is the contract a wire protocol implements to participate in
// code generation (spec §4.G: "protocol_id, application_transport,
// generate_builders(op) → code, generate_parsers(op) → code,
// generate_stubs(shape) → code, generate_errors(svc) → code, plus optional
// client-middleware/config hooks").
//
// Builders, parsers, stubs and errors each collect into one shared file per
// category (spec §4.B: a symbol's category determines its file, not its
// shape) — so every method here appends to a *writer.Writer the caller
// owns and finalizes once after walking every shape, rather than each
// returning its own file.
type Generator interface {
	// ProtocolID is the trait shape id this generator claims (e.g.
	// "aws.protocols#restJson1").
	ProtocolID() string

	// ApplicationTransport is the transport this protocol's operations are
	// carried over.
	ApplicationTransport() *transport.ApplicationTransport

	// GenerateBuilder appends op's HTTP request builder class to w and
	// returns the class name the Build middleware step will call.
	GenerateBuilder(m *model.Model, svc *model.Service, op *model.Shape, w *writer.Writer) (BuilderResult, error)

	// GenerateParser appends op's HTTP response parser class (success and
	// error paths) to w.
	GenerateParser(m *model.Model, svc *model.Service, op *model.Shape, w *writer.Writer) (ParserResult, error)

	// GenerateStubs appends shape's default-value stub method to w. Called
	// once per structure, union, list, set or map shape reachable from any
	// operation's input, output or errors (spec §4.J).
	GenerateStubs(m *model.Model, shape *model.Shape, w *writer.Writer) error

	// GenerateErrors appends svc's error class hierarchy to w.
	GenerateErrors(m *model.Model, svc *model.Service, w *writer.Writer) error

	// ClientMiddleware returns protocol-level middleware additions for op,
	// inserted between the transport defaults and user additions (spec
	// §4.E composition order). May be nil.
	ClientMiddleware(m *model.Model, svc *model.Service, op *model.Shape) []middleware.Record

	// ClientConfig returns protocol-level config keys contributed to the
	// client's config class, beyond the transport's own (spec §4.G, §4.L).
	// May be nil.
	ClientConfig() []transport.ConfigKey
}

// Registry maps protocol trait shape ids to their Generator.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds gen under its own ProtocolID. A later call with the same
// id overwrites the earlier one.
func (r *Registry) Register(gen Generator) *Registry {
	r.generators[gen.ProtocolID()] = gen
	return r
}

// Lookup returns the Generator registered for protocolID, or an
// *UnsupportedProtocolError listing the known ids.
func (r *Registry) Lookup(protocolID string) (Generator, error) {
	gen, ok := r.generators[protocolID]
	if !ok {
		known := make([]string, 0, len(r.generators))
		for id := range r.generators {
			known = append(known, id)
		}
		return nil, &UnsupportedProtocolError{ProtocolID: protocolID, Known: known}
	}
	return gen, nil
}
