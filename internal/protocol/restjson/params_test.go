package restjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol/restjson"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

func TestGenerateParamsNormalizesNestedStructureMember(t *testing.T) {
	b := model.NewBuilder()
	str := &model.Shape{ID: model.ShapeID{Name: "String"}, Kind: model.KindString}
	b.AddShape(str)
	child := &model.Shape{
		ID:   model.ShapeID{Name: "Child"},
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "label", Target: str.ID},
		},
	}
	b.AddShape(child)
	parent := &model.Shape{
		ID:   model.ShapeID{Name: "Parent"},
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "child", Target: child.ID},
		},
	}
	b.AddShape(parent)
	m := b.Build()

	sym := symbols.NewProvider("Acme")
	w := writer.New("params.rb")
	require.NoError(t, restjson.GenerateParams(m, parent, sym, w))

	out, err := w.Finalize()
	require.NoError(t, err)
	assert.Contains(t, out, "data = params.dup")
	assert.Contains(t, out, `data[:child] = Acme::ChildParams.build(data[:child], context: "#{context}.child") unless data[:child].nil?`)
	assert.Contains(t, out, "Acme::Parent.new(**data)")
}

func TestGenerateParamsUnionBuildsTagAndValue(t *testing.T) {
	b := model.NewBuilder()
	str := &model.Shape{ID: model.ShapeID{Name: "String"}, Kind: model.KindString}
	b.AddShape(str)
	choice := &model.Shape{
		ID:   model.ShapeID{Name: "Choice"},
		Kind: model.KindUnion,
		Members: []model.Member{
			{Name: "text", Target: str.ID},
		},
	}
	b.AddShape(choice)
	m := b.Build()

	sym := symbols.NewProvider("Acme")
	w := writer.New("params.rb")
	require.NoError(t, restjson.GenerateParams(m, choice, sym, w))

	out, err := w.Finalize()
	require.NoError(t, err)
	assert.Contains(t, out, "tag = params.keys.first")
	assert.Contains(t, out, "Acme::Choice.new(tag: tag, value: params[tag])")
}
