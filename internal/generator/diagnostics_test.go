package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"goa.design/clue/log"

	"github.com/AndrewFossAWS/smithy-ruby/internal/generator"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

func TestDiagnosticSinkRunIDIsStable(t *testing.T) {
	sink := generator.NewDiagnosticSink()
	assert.NotEmpty(t, sink.RunID())
	assert.Equal(t, sink.RunID(), sink.RunID())
}

func TestDiagnosticSinkHasErrorsOnlyAfterErrorSeverity(t *testing.T) {
	ctx := log.Context(context.Background(), log.WithFormat(log.FormatJSON))
	sink := generator.NewDiagnosticSink()
	sink.Emit(ctx, generator.Diagnostic{Severity: generator.SeverityWarning, Code: "W1", ShapeID: model.ShapeID{Name: "Foo"}, Message: "hmm"})
	assert.False(t, sink.HasErrors())

	sink.Emit(ctx, generator.Diagnostic{Severity: generator.SeverityError, Code: "E1", ShapeID: model.ShapeID{Name: "Foo"}, Message: "bad"})
	assert.True(t, sink.HasErrors())
}

func TestDiagnosticSinkAllRecordsEveryEmitEvenWhenThrottled(t *testing.T) {
	ctx := log.Context(context.Background(), log.WithFormat(log.FormatJSON))
	sink := generator.NewDiagnosticSink()
	for i := 0; i < 5; i++ {
		sink.Emit(ctx, generator.Diagnostic{Severity: generator.SeverityWarning, Code: "REPEAT", ShapeID: model.ShapeID{Name: "Foo"}, Message: "again"})
	}
	assert.Len(t, sink.All(), 5)
}

func TestStartPhaseReturnsDerivedContextAndEndFunc(t *testing.T) {
	sink := generator.NewDiagnosticSink()
	ctx, end := sink.StartPhase(context.Background(), "generate")
	assert.NotNil(t, ctx)
	end()
}
