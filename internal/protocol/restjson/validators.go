package restjson

import (
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// GenerateValidator appends shape's `validate!` class method to w (spec
// §4.K): it checks required-ness, recurses into nested structure/union
// members (and list/map elements targeting them) so a deeply nested
// violation is reported with a dotted path context (e.g.
// "input[:list][0]"), and checks that a @streaming member is IO-like.
func GenerateValidator(m *model.Model, shape *model.Shape, sym *symbols.Provider, w *writer.Writer) error {
	validatorSym := sym.ClassName(shape, symbols.CategoryValidator)

	w.OpenBlock("class $name", "end", map[string]string{"name": validatorSym.Unqualified})
	w.OpenBlock("def self.validate!(params, context:)", "end", nil)
	for _, mem := range shape.Members {
		member := mem
		key := sym.MemberName(member.Name)
		required := m.HasTrait(shape, &member, model.TraitRequired)
		if required {
			w.OpenBlock("if params[:"+key+"].nil?", "end", nil)
			w.Write("raise Smithy::ValidationError, \"#{context}.$key is required\"", map[string]string{"key": key})
			w.CloseBlock(nil)
		}

		target, err := m.ExpectShape(member.Target)
		if err != nil {
			return err
		}
		if err := emitMemberValidation(m, &member, target, key, sym, w); err != nil {
			return err
		}
	}
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// emitMemberValidation emits, when applicable, the recursive or IO-like
// check for one member, guarded so an absent optional member is skipped
// rather than dereferenced.
func emitMemberValidation(m *model.Model, member *model.Member, target *model.Shape, key string, sym *symbols.Provider, w *writer.Writer) error {
	accessor := "params[:" + key + "]"

	if m.HasTrait(nil, member, model.TraitStreaming) {
		w.OpenBlock("unless "+accessor+".nil? || "+accessor+".respond_to?(:read)", "end", nil)
		w.Write("raise Smithy::ValidationError, \"#{context}.$key must be IO-like\"", map[string]string{"key": key})
		w.CloseBlock(nil)
		return nil
	}

	switch target.Kind {
	case model.KindStructure, model.KindUnion:
		targetValidator := sym.ClassName(target, symbols.CategoryValidator)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		w.Write("$validator.validate!($accessor, context: \"#{context}.$key\")", map[string]string{
			"validator": targetValidator.Qualified, "accessor": accessor, "key": key,
		})
		w.CloseBlock(nil)
	case model.KindList, model.KindSet:
		element, err := m.ExpectShape(target.Target)
		if err != nil {
			return err
		}
		if element.Kind != model.KindStructure && element.Kind != model.KindUnion {
			return nil
		}
		elementValidator := sym.ClassName(element, symbols.CategoryValidator)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		w.OpenBlock(accessor+".each_with_index do |v, i|", "end", nil)
		w.Write("$validator.validate!(v, context: \"#{context}.$key[#{i}]\")", map[string]string{
			"validator": elementValidator.Qualified, "key": key,
		})
		w.CloseBlock(nil)
		w.CloseBlock(nil)
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
		valueValidator := sym.ClassName(value, symbols.CategoryValidator)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		w.OpenBlock(accessor+".each do |k, v|", "end", nil)
		w.Write("$validator.validate!(v, context: \"#{context}.$key[#{k}]\")", map[string]string{
			"validator": valueValidator.Qualified, "key": key,
		})
		w.CloseBlock(nil)
		w.CloseBlock(nil)
	}
	return nil
}
