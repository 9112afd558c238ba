package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/visitor"
)

type recordingVisitor struct{ calls []string }

func (r *recordingVisitor) VisitStructure(s *model.Shape) error { r.calls = append(r.calls, "structure:"+s.ID.Name); return nil }
func (r *recordingVisitor) VisitUnion(s *model.Shape) error     { r.calls = append(r.calls, "union"); return nil }
func (r *recordingVisitor) VisitList(s *model.Shape) error      { r.calls = append(r.calls, "list"); return nil }
func (r *recordingVisitor) VisitSet(s *model.Shape) error       { r.calls = append(r.calls, "set"); return nil }
func (r *recordingVisitor) VisitMap(s *model.Shape) error       { r.calls = append(r.calls, "map"); return nil }
func (r *recordingVisitor) VisitOperation(s *model.Shape) error { r.calls = append(r.calls, "operation"); return nil }
func (r *recordingVisitor) VisitDefault(s *model.Shape) error   { r.calls = append(r.calls, "default:"+string(s.Kind)); return nil }

func TestDispatchRoutesByKind(t *testing.T) {
	v := &recordingVisitor{}
	require.NoError(t, visitor.Dispatch(v, &model.Shape{Kind: model.KindStructure, ID: model.ShapeID{Name: "Foo"}}))
	require.NoError(t, visitor.Dispatch(v, &model.Shape{Kind: model.KindString}))
	require.NoError(t, visitor.Dispatch(v, &model.Shape{Kind: model.KindTimestamp}))
	assert.Equal(t, []string{"structure:Foo", "default:string", "default:timestamp"}, v.calls)
}

func TestDispatchUnknownKindIsNotImplemented(t *testing.T) {
	v := &recordingVisitor{}
	err := visitor.Dispatch(v, &model.Shape{Kind: model.KindMember, ID: model.ShapeID{Name: "X"}})
	var notImpl *visitor.NotImplementedError
	require.ErrorAs(t, err, &notImpl)
}

func TestTrackerWithDoesNotMutateParent(t *testing.T) {
	id := model.ShapeID{Name: "Tree"}
	base := visitor.NewTracker()
	child := base.With(id)
	assert.False(t, base.Contains(id))
	assert.True(t, child.Contains(id))
}

func TestEmissionTrackerAllowsExactlyOneEmitPerCategory(t *testing.T) {
	tracker := visitor.NewEmissionTracker()
	id := model.ShapeID{Name: "Thing"}
	assert.True(t, tracker.ShouldEmit(id, "builder"))
	assert.False(t, tracker.ShouldEmit(id, "builder"))
	assert.True(t, tracker.ShouldEmit(id, "parser"), "different category is independent")
}
