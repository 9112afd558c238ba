package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
)

func shape(name string, kind model.Kind) *model.Shape {
	return &model.Shape{ID: model.ShapeID{Namespace: "ns", Name: name}, Kind: kind}
}

func TestClassNameIsStableAcrossCalls(t *testing.T) {
	p := symbols.NewProvider("Acme")
	s := shape("GetThing", model.KindOperation)
	first := p.ClassName(s, symbols.CategoryBuilder)
	second := p.ClassName(s, symbols.CategoryBuilder)
	assert.Equal(t, first, second, "symbols must be stable under repeated runs with the same input")
}

func TestClassNameVariesByCategory(t *testing.T) {
	p := symbols.NewProvider("Acme")
	s := shape("GetThing", model.KindOperation)
	builder := p.ClassName(s, symbols.CategoryBuilder)
	parser := p.ClassName(s, symbols.CategoryParser)
	assert.NotEqual(t, builder.Unqualified, parser.Unqualified)
	assert.Contains(t, builder.Unqualified, "Builder")
	assert.Contains(t, parser.Unqualified, "Parser")
}

func TestClassNameLeadingDigitGetsPrefixToken(t *testing.T) {
	p := symbols.NewProvider("Acme")
	s := shape("200Response", model.KindStructure)
	sym := p.ClassName(s, symbols.CategoryType)
	assert.Contains(t, sym.Unqualified, "Struct____")
}

func TestMemberNameDisambiguatesReservedWords(t *testing.T) {
	p := symbols.NewProvider("Acme")
	assert.Equal(t, "class_value", p.MemberName("class"))
	assert.Equal(t, "end_value", p.MemberName("end"))
	assert.Equal(t, "thing_id", p.MemberName("ThingId"))
}

func TestEnumConstantVerbatim(t *testing.T) {
	p := symbols.NewProvider("Acme")
	assert.Equal(t, "ACTIVE", p.EnumConstant("ACTIVE"))
}
