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

func finalize(t *testing.T, w *writer.Writer) string {
	t.Helper()
	content, err := w.Finalize()
	require.NoError(t, err)
	return content
}

func TestGenerateBuilderGetWithLabel(t *testing.T) {
	b := model.NewBuilder()
	idShape := &model.Shape{ID: model.ShapeID{Name: "Id"}, Kind: model.KindString}
	b.AddShape(idShape)
	input := &model.Shape{
		ID:   model.ShapeID{Name: "GetThingInput"},
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "id", Target: idShape.ID, Traits: []model.Trait{{Name: model.TraitHTTPLabel}}},
		},
	}
	b.AddShape(input)
	op := &model.Shape{
		ID:    model.ShapeID{Name: "GetThing"},
		Kind:  model.KindOperation,
		Input: &input.ID,
		Traits: []model.Trait{
			{Name: model.TraitHTTP, HTTP: &model.HTTPTrait{Method: "GET", URI: "/things/{id}", Code: 200}},
		},
	}
	b.AddShape(op)
	m := b.Build()

	sym := symbols.NewProvider("Acme")
	w := writer.New("builders.rb")
	result, err := restjson.GenerateBuilder(m, op, sym, w)
	require.NoError(t, err)
	assert.Equal(t, "Acme::GetThingBuilder", result.BuilderClass)

	out := finalize(t, w)
	assert.Contains(t, out, "request.http_method = 'GET'")
	assert.Contains(t, out, "Restjson.escape_path_segment(params.id.to_s)")
	assert.Contains(t, out, "'/things/' + Restjson.escape_path_segment(params.id.to_s)")
	assert.Contains(t, out, "if params.id.nil? || params.id.to_s.empty?")
	assert.Contains(t, out, "raise Smithy::LabelBindingError,")
}

func TestGenerateBuilderQueryListAndPrefixHeaders(t *testing.T) {
	b := model.NewBuilder()
	tagsTarget := &model.Shape{ID: model.ShapeID{Name: "TagList"}, Kind: model.KindList, Target: model.ShapeID{Name: "String"}}
	b.AddShape(tagsTarget)
	metaTarget := &model.Shape{ID: model.ShapeID{Name: "MetaMap"}, Kind: model.KindMap}
	b.AddShape(metaTarget)

	input := &model.Shape{
		ID:   model.ShapeID{Name: "ListThingsInput"},
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "tags", Target: tagsTarget.ID, Traits: []model.Trait{{Name: model.TraitHTTPQuery, Value: "tag"}}},
			{Name: "meta", Target: metaTarget.ID, Traits: []model.Trait{{Name: model.TraitHTTPPrefixHeaders, Value: "x-meta-"}}},
		},
	}
	b.AddShape(input)
	op := &model.Shape{
		ID:    model.ShapeID{Name: "ListThings"},
		Kind:  model.KindOperation,
		Input: &input.ID,
		Traits: []model.Trait{
			{Name: model.TraitHTTP, HTTP: &model.HTTPTrait{Method: "GET", URI: "/things", Code: 200}},
		},
	}
	b.AddShape(op)
	m := b.Build()

	sym := symbols.NewProvider("Acme")
	w := writer.New("builders.rb")
	_, err := restjson.GenerateBuilder(m, op, sym, w)
	require.NoError(t, err)

	out := finalize(t, w)
	assert.Contains(t, out, "request.query['tag'] = params.tags")
	assert.Contains(t, out, "params.meta.each do |k, v|")
	assert.Contains(t, out, "request.headers['x-meta-' + k.to_s] = v.to_s")
}

func TestGenerateBuilderGreedyLabelAndMediaTypeHeader(t *testing.T) {
	b := model.NewBuilder()
	pathShape := &model.Shape{ID: model.ShapeID{Name: "Path"}, Kind: model.KindString}
	b.AddShape(pathShape)
	blob := &model.Shape{ID: model.ShapeID{Name: "Blob"}, Kind: model.KindBlob}
	b.AddShape(blob)

	input := &model.Shape{
		ID:   model.ShapeID{Name: "PutFileInput"},
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "path", Target: pathShape.ID, Traits: []model.Trait{{Name: model.TraitHTTPLabel}}},
			{Name: "body", Target: blob.ID, Traits: []model.Trait{
				{Name: model.TraitHTTPPayload},
				{Name: model.TraitMediaType, Value: "application/octet-stream"},
			}},
		},
	}
	b.AddShape(input)
	op := &model.Shape{
		ID:    model.ShapeID{Name: "PutFile"},
		Kind:  model.KindOperation,
		Input: &input.ID,
		Traits: []model.Trait{
			{Name: model.TraitHTTP, HTTP: &model.HTTPTrait{Method: "PUT", URI: "/files/{path+}", Code: 200}},
		},
	}
	b.AddShape(op)
	m := b.Build()

	sym := symbols.NewProvider("Acme")
	w := writer.New("builders.rb")
	_, err := restjson.GenerateBuilder(m, op, sym, w)
	require.NoError(t, err)

	out := finalize(t, w)
	assert.Contains(t, out, "Restjson.escape_greedy_label(params.path.to_s)")
	assert.Contains(t, out, "request.body = params.body")
	assert.Contains(t, out, "request.headers['Content-Type'] = 'application/octet-stream'")
}
