package restjson

import (
	"fmt"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// GenerateErrors appends every error shape reachable from svc's operations
// to w, once each, as a subclass of the client/server base error selected
// by the shape's @error trait (spec §4.K).
func GenerateErrors(m *model.Model, svc *model.Service, sym *symbols.Provider, w *writer.Writer) error {
	ops, err := m.TopDownOperations(svc)
	if err != nil {
		return err
	}
	seen := map[model.ShapeID]bool{}
	for _, op := range ops {
		for _, errID := range op.Errors {
			if seen[errID] {
				continue
			}
			seen[errID] = true
			errShape, err := m.ExpectShape(errID)
			if err != nil {
				return err
			}
			emitErrorClass(m, errShape, sym, w)
		}
	}
	return nil
}

func emitErrorClass(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) {
	errSym := sym.ClassName(shape, symbols.CategoryError)
	base := "Smithy::ApiError"
	if t, ok := m.GetTrait(shape, nil, model.TraitError); ok && t.Error != nil {
		if t.Error.Kind == "server" {
			base = "Smithy::ApiServerError"
		} else {
			base = "Smithy::ApiClientError"
		}
	}
	w.OpenBlock(fmt.Sprintf("class %s < %s", errSym.Unqualified, base), "end", nil)
	w.Write("CODE = $code", map[string]string{"code": rubyString(shape.ID.Name)})
	for _, mem := range shape.Members {
		w.Write("attr_reader :$name", map[string]string{"name": sym.MemberName(mem.Name)})
	}
	w.OpenBlock("def initialize(**data)", "end", nil)
	for _, mem := range shape.Members {
		name := sym.MemberName(mem.Name)
		w.Write("@$name = data[:$name]", map[string]string{"name": name})
	}
	w.Write("super(data[:message])", nil)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
}

// ErrorDiscriminator names the runtime helper module the generated Parse
// middleware and GenerateErrors-produced classes both depend on: matching
// a response's body/header error-code discriminator to a registered error
// class, or falling back to a generic ApiError when the code is unknown
// (spec §4.I: "unknown-code fallback to generic ApiError").
const ErrorDiscriminator = "Restjson::ErrorParser"
