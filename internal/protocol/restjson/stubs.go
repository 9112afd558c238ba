package restjson

import (
	"fmt"
	"strings"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// ScalarDefaultExpr returns the Ruby literal a scalar shape kind defaults
// to, given the member name or shape name providing the default's label
// (spec §4.J: "numeric = 1 (or 1.0 for floating), boolean = false, string
// = member name or shape name, blob = member name, timestamp = current
// time, ..., document = { shape_name: [0,1,2] }"). Structure/union members
// targeting a scalar shape inline this rather than dispatching to a
// one-line stub class for every scalar shape in the model.
func ScalarDefaultExpr(kind model.Kind, label string) string {
	switch kind {
	case model.KindString, model.KindBlob:
		return rubyString(label)
	case model.KindBoolean:
		return "false"
	case model.KindDocument:
		return "{ " + documentKey(label) + ": [0, 1, 2] }"
	case model.KindTimestamp:
		return "Time.now"
	case model.KindFloat, model.KindDouble, model.KindBigDec:
		return "1.0"
	default:
		if model.IsNumeric(kind) {
			return "1"
		}
		return "nil"
	}
}

// documentKey turns label into a Ruby symbol-safe token for the document
// default's synthetic key.
func documentKey(label string) string {
	var b strings.Builder
	for i, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9' && i > 0, r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune('_')
		}
	}
	key := b.String()
	if key == "" {
		key = "value"
	}
	return key
}

// GenerateStubs appends shape's default-value stub class to w (spec
// §4.J). Every kind carries a `visited` list so a recursive shape (one
// that is its own, possibly indirect, member/element/value target)
// short-circuits to nil instead of looping forever.
func GenerateStubs(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	switch shape.Kind {
	case model.KindStructure:
		return emitStructureStub(m, shape, sym, w)
	case model.KindUnion:
		return emitUnionStub(m, shape, sym, w)
	case model.KindList, model.KindSet:
		return emitListStub(m, shape, sym, w)
	case model.KindMap:
		return emitMapStub(m, shape, sym, w)
	}
	return nil
}

func emitStructureStub(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	stubSym := sym.ClassName(shape, symbols.CategoryStub)
	typeSym := sym.ClassName(shape, symbols.CategoryType)
	guardKey := rubyString(shape.ID.String())

	w.OpenBlock("class $name", "end", map[string]string{"name": stubSym.Unqualified})
	w.OpenBlock("def self.default(visited = [])", "end", nil)
	w.Write("return nil if visited.include?($key)", map[string]string{"key": guardKey})
	w.Write("visited = visited + [$key]", map[string]string{"key": guardKey})
	w.Write("data = {}", nil)
	for _, mem := range shape.Members {
		member := mem
		target, err := m.ExpectShape(member.Target)
		if err != nil {
			return err
		}
		key := sym.MemberName(member.Name)
		w.Write("data[:$key] = $expr", map[string]string{"key": key, "expr": defaultExprFor(sym, target, member.Name)})
	}
	w.Write("$type.new(**data)", map[string]string{"type": typeSym.Qualified})
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

func emitUnionStub(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	stubSym := sym.ClassName(shape, symbols.CategoryStub)
	guardKey := rubyString(shape.ID.String())

	w.OpenBlock("class $name", "end", map[string]string{"name": stubSym.Unqualified})
	w.OpenBlock("def self.default(visited = [])", "end", nil)
	w.Write("return nil if visited.include?($key)", map[string]string{"key": guardKey})
	w.Write("visited = visited + [$key]", map[string]string{"key": guardKey})
	if len(shape.Members) == 0 {
		w.Write("nil", nil)
	} else {
		first := shape.Members[0]
		target, err := m.ExpectShape(first.Target)
		if err != nil {
			return err
		}
		w.Write("{ $key: $expr }", map[string]string{"key": sym.MemberName(first.Name), "expr": defaultExprFor(sym, target, first.Name)})
	}
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// emitListStub emits a singleton-of-element-default (spec §4.J: "list =
// singleton of element default").
func emitListStub(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	stubSym := sym.ClassName(shape, symbols.CategoryStub)
	guardKey := rubyString(shape.ID.String())

	element, err := m.ExpectShape(shape.Target)
	if err != nil {
		return err
	}

	w.OpenBlock("class $name", "end", map[string]string{"name": stubSym.Unqualified})
	w.OpenBlock("def self.default(visited = [])", "end", nil)
	w.Write("return nil if visited.include?($key)", map[string]string{"key": guardKey})
	w.Write("visited = visited + [$key]", map[string]string{"key": guardKey})
	w.Write("[ $expr ]", map[string]string{"expr": defaultExprFor(sym, element, shape.Target.Name)})
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// emitMapStub emits a single test_key → value-default entry (spec §4.J:
// "map = single test_key → value default").
func emitMapStub(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	stubSym := sym.ClassName(shape, symbols.CategoryStub)
	guardKey := rubyString(shape.ID.String())

	valueMember, ok := shape.MemberByName("value")
	if !ok {
		return fmt.Errorf("restjson: map %s has no value member", shape.ID)
	}
	value, err := m.ExpectShape(valueMember.Target)
	if err != nil {
		return err
	}

	w.OpenBlock("class $name", "end", map[string]string{"name": stubSym.Unqualified})
	w.OpenBlock("def self.default(visited = [])", "end", nil)
	w.Write("return nil if visited.include?($key)", map[string]string{"key": guardKey})
	w.Write("visited = visited + [$key]", map[string]string{"key": guardKey})
	w.Write("{ 'test_key' => $expr }", map[string]string{"expr": defaultExprFor(sym, value, valueMember.Target.Name)})
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// defaultExprFor returns the Ruby expression a structure/union member, list
// element or map value targeting target defaults to: an inline scalar
// literal, or a call into the target's own stub class threading visited
// through so composite cycles (including through intermediate lists/maps)
// terminate. label supplies the member/shape name backing the string,
// blob and document defaults.
func defaultExprFor(sym *symbols.Provider, target *model.Shape, label string) string {
	switch target.Kind {
	case model.KindStructure, model.KindUnion, model.KindList, model.KindSet, model.KindMap:
		stubSym := sym.ClassName(target, symbols.CategoryStub)
		return stubSym.Qualified + ".default(visited)"
	default:
		return ScalarDefaultExpr(target.Kind, label)
	}
}

// GenerateOperationStub appends op's response-stub builder to w: a class
// method test code calls to populate a fake Response from either a
// caller-supplied stub or the output shape's own default.
func GenerateOperationStub(m *model.Model, op *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	opStubSym := sym.ClassName(op, symbols.CategoryStub)

	w.OpenBlock("class $name", "end", map[string]string{"name": opStubSym.Unqualified})
	w.OpenBlock("def self.stub(response, stub: nil)", "end", nil)
	if op.Output == nil {
		w.Write("response", nil)
		w.CloseBlock(nil)
		w.CloseBlock(nil)
		w.Newline()
		return nil
	}
	output, err := m.ExpectShape(*op.Output)
	if err != nil {
		return err
	}
	outStubSym := sym.ClassName(output, symbols.CategoryStub)
	w.Write("data = stub || $stub.default", map[string]string{"stub": outStubSym.Qualified})
	w.Write("response.body = Restjson.build_body(data.to_h)", nil)
	w.Write("response", nil)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}
