package restjson

import (
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// GenerateParams appends shape's `build` class method to w: it validates
// params via the shape's Validator, normalizes each nested
// structure/union/list/map member by delegating to that member's own
// Params builder (so a deeply nested loosely-typed hash becomes strict
// data records all the way down), and constructs the shape's data type
// (spec §4.K: "normalizes loosely-typed inputs ... validates types per
// member"). Unions build differently: params carries exactly one
// tag => value entry, which becomes the tagged type's tag/value pair.
func GenerateParams(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	if shape.Kind == model.KindUnion {
		return emitUnionParams(shape, sym, w)
	}

	paramsSym := sym.ClassName(shape, symbols.CategoryParams)
	validatorSym := sym.ClassName(shape, symbols.CategoryValidator)
	typeSym := sym.ClassName(shape, symbols.CategoryType)

	w.OpenBlock("class $name", "end", map[string]string{"name": paramsSym.Unqualified})
	w.OpenBlock("def self.build(params, context: '')", "end", nil)
	w.Write("$validator.validate!(params, context: context)", map[string]string{"validator": validatorSym.Qualified})
	w.Write("data = params.dup", nil)
	for _, mem := range shape.Members {
		member := mem
		key := sym.MemberName(member.Name)
		target, err := m.ExpectShape(member.Target)
		if err != nil {
			return err
		}
		if err := emitMemberNormalization(m, target, key, sym, w); err != nil {
			return err
		}
	}
	w.Write("$type.new(**data)", map[string]string{"type": typeSym.Qualified})
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// emitMemberNormalization rebuilds data[key] in place through the target's
// own Params builder when target is itself a structure/union, or maps that
// builder over each element when target is a list/set/map of such a kind.
// Scalar-targeted members pass through params.dup unchanged.
func emitMemberNormalization(m *model.Model, target *model.Shape, key string, sym *symbols.Provider, w *writer.Writer) error {
	accessor := "data[:" + key + "]"

	switch target.Kind {
	case model.KindStructure, model.KindUnion:
		targetParams := sym.ClassName(target, symbols.CategoryParams)
		w.Write(accessor+" = $params.build($accessor, context: \"#{context}.$key\") unless $accessor.nil?", map[string]string{
			"params": targetParams.Qualified, "accessor": accessor, "key": key,
		})
	case model.KindList, model.KindSet:
		element, err := m.ExpectShape(target.Target)
		if err != nil {
			return err
		}
		if element.Kind != model.KindStructure && element.Kind != model.KindUnion {
			return nil
		}
		elementParams := sym.ClassName(element, symbols.CategoryParams)
		w.Write(accessor+" = $accessor.map { |v| $params.build(v, context: \"#{context}.$key\") } unless $accessor.nil?", map[string]string{
			"params": elementParams.Qualified, "accessor": accessor, "key": key,
		})
	case model.KindMap:
		valueMember, ok := target.MemberByName("value")
		if !ok {
			return nil
		}
		value, err := m.ExpectShape(valueMember.Target)
		if err != nil {
			return err
		}
		if value.Kind != model.KindStructure && value.Kind != model.KindUnion {
			return nil
		}
		valueParams := sym.ClassName(value, symbols.CategoryParams)
		w.Write(accessor+" = $accessor.transform_values { |v| $params.build(v, context: \"#{context}.$key\") } unless $accessor.nil?", map[string]string{
			"params": valueParams.Qualified, "accessor": accessor, "key": key,
		})
	}
	return nil
}

func emitUnionParams(shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	paramsSym := sym.ClassName(shape, symbols.CategoryParams)
	validatorSym := sym.ClassName(shape, symbols.CategoryValidator)
	typeSym := sym.ClassName(shape, symbols.CategoryType)

	w.OpenBlock("class $name", "end", map[string]string{"name": paramsSym.Unqualified})
	w.OpenBlock("def self.build(params, context: '')", "end", nil)
	w.Write("$validator.validate!(params, context: context)", map[string]string{"validator": validatorSym.Qualified})
	w.Write("tag = params.keys.first", nil)
	w.Write("$type.new(tag: tag, value: params[tag])", map[string]string{"type": typeSym.Qualified})
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}
