package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

func strID(name string) model.ShapeID { return model.ShapeID{Namespace: "smithy.example", Name: name} }

func buildTreeModel() *model.Model {
	b := model.NewBuilder()
	b.AddShape(&model.Shape{
		ID:   strID("Tree"),
		Kind: model.KindStructure,
		Members: []model.Member{
			{Name: "child", Target: strID("Tree")},
			{Name: "label", Target: strID("String")},
		},
	})
	b.AddShape(&model.Shape{ID: strID("String"), Kind: model.KindString})
	return b.Build()
}

func TestWalkVisitsEachShapeOnceEvenWithCycles(t *testing.T) {
	m := buildTreeModel()
	order, err := m.Walk(strID("Tree"))
	require.NoError(t, err)
	require.Len(t, order, 2)
	assert.Equal(t, strID("Tree"), order[0].ID)
	assert.Equal(t, strID("String"), order[1].ID)
}

func TestExpectShapeMissingReturnsIntegrityError(t *testing.T) {
	m := model.NewBuilder().Build()
	_, err := m.ExpectShape(strID("Missing"))
	var integrityErr *model.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, strID("Missing"), integrityErr.ShapeID)
}

func TestHasTraitMemberOverridesTarget(t *testing.T) {
	b := model.NewBuilder()
	b.AddShape(&model.Shape{
		ID:   strID("Timestamped"),
		Kind: model.KindTimestamp,
		Traits: []model.Trait{
			{Name: model.TraitTimestampFormat, Value: string(model.TimestampEpochSeconds)},
		},
	})
	input := &model.Shape{
		ID:   strID("Input"),
		Kind: model.KindStructure,
		Members: []model.Member{
			{
				Name:   "when",
				Target: strID("Timestamped"),
				Traits: []model.Trait{
					{Name: model.TraitTimestampFormat, Value: string(model.TimestampHTTPDate)},
				},
			},
			{Name: "other", Target: strID("Timestamped")},
		},
	}
	b.AddShape(input)
	m := b.Build()

	member, _ := input.MemberByName("when")
	trait, ok := m.GetTrait(input, &member, model.TraitTimestampFormat)
	require.True(t, ok)
	assert.Equal(t, string(model.TimestampHTTPDate), trait.Value, "member trait must win over target trait")

	other, _ := input.MemberByName("other")
	trait, ok = m.GetTrait(input, &other, model.TraitTimestampFormat)
	require.True(t, ok)
	assert.Equal(t, string(model.TimestampEpochSeconds), trait.Value, "falls back to target trait when member has none")
}

func TestTopDownOperationsSortedByName(t *testing.T) {
	b := model.NewBuilder()
	b.AddShape(&model.Shape{ID: strID("Zebra"), Kind: model.KindOperation})
	b.AddShape(&model.Shape{ID: strID("Apple"), Kind: model.KindOperation})
	svc := &model.Service{ID: strID("Svc"), Operations: []model.ShapeID{strID("Zebra"), strID("Apple")}}
	b.AddService(svc)
	m := b.Build()

	ops, err := m.TopDownOperations(svc)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "Apple", ops[0].ID.Name)
	assert.Equal(t, "Zebra", ops[1].ID.Name)
}
