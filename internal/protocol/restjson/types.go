package restjson

import (
	"strings"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// GenerateType appends shape's keyword-initialized data type to w
// (component K): structures become a `Struct.new(..., keyword_init:
// true)`; unions become a tagged sum whose variants correspond to their
// members plus an `unknown` tag (spec §4.K).
func GenerateType(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	switch shape.Kind {
	case model.KindStructure:
		emitStructType(shape, sym, w)
	case model.KindUnion:
		emitUnionType(shape, sym, w)
	}
	return nil
}

func emitStructType(shape *model.Shape, sym *symbols.Provider, w *writer.Writer) {
	typeSym := sym.ClassName(shape, symbols.CategoryType)
	args := make([]string, len(shape.Members), len(shape.Members)+1)
	for i, mem := range shape.Members {
		args[i] = ":" + sym.MemberName(mem.Name)
	}
	args = append(args, "keyword_init: true")
	w.Write("$name = Struct.new($args)", map[string]string{
		"name": typeSym.Unqualified,
		"args": strings.Join(args, ", "),
	})
}

// emitUnionType emits a Struct.new(:tag, :value, keyword_init: true)
// wrapper with one class-method constructor per member plus `unknown`,
// so a union value always carries which variant it holds alongside the
// value itself.
func emitUnionType(shape *model.Shape, sym *symbols.Provider, w *writer.Writer) {
	typeSym := sym.ClassName(shape, symbols.CategoryType)
	w.OpenBlock("$name = Struct.new(:tag, :value, keyword_init: true) do", "end", map[string]string{"name": typeSym.Unqualified})
	for _, mem := range shape.Members {
		tag := sym.MemberName(mem.Name)
		w.OpenBlock("def self.$tag(value)", "end", map[string]string{"tag": tag})
		w.Write("new(tag: :$tag, value: value)", map[string]string{"tag": tag})
		w.CloseBlock(nil)
	}
	w.OpenBlock("def self.unknown(value)", "end", nil)
	w.Write("new(tag: :unknown, value: value)", nil)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
}
