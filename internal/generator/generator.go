// Package generator implements the orchestrator (component L): it walks a
// service's operation and shape closure, drives a protocol.Generator over
// every shape exactly once per category, and assembles the resulting
// files (plus the client and config classes it owns directly) into a
// single file manifest.
package generator

import (
	"context"
	"path"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/visitor"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// Result is everything a Generate call produced.
type Result struct {
	Manifest    *writer.Manifest
	Diagnostics []Diagnostic
}

// typeGenerator, validatorGenerator and paramsGenerator are satisfied by
// protocol.Generator implementations (like restjson.Generator) that also
// emit shape-level types/validators/params. Generate degrades gracefully
// for a Generator that only implements the required interface (spec §4.G
// names builders/parsers/stubs/errors as the contract; these three are an
// enrichment no generator is obligated to provide).
type typeGenerator interface {
	GenerateType(*model.Model, *model.Shape, *writer.Writer) error
}
type validatorGenerator interface {
	GenerateValidator(*model.Model, *model.Shape, *writer.Writer) error
}
type paramsGenerator interface {
	GenerateParams(*model.Model, *model.Shape, *writer.Writer) error
}
type operationStubGenerator interface {
	GenerateOperationStub(*model.Model, *model.Shape, *writer.Writer) error
}

// Generate walks svc's operation and shape closure and emits every file
// the orchestrator owns (spec §5, §4.L).
func Generate(ctx context.Context, m *model.Model, svc *model.Service, gen protocol.Generator, sym *symbols.Provider, sink *DiagnosticSink) (*Result, error) {
	ctx, end := sink.StartPhase(ctx, "generate")
	defer end()

	man := writer.NewManifest()
	tracker := visitor.NewEmissionTracker()

	ops, err := m.TopDownOperations(svc)
	if err != nil {
		return nil, err
	}

	files := struct {
		types, validators, params, stubs, builders, parsers, errors *writer.Writer
	}{
		types:      writer.New(path.Join("lib", "types.rb")),
		validators: writer.New(path.Join("lib", "validators.rb")),
		params:     writer.New(path.Join("lib", "params.rb")),
		stubs:      writer.New(path.Join("lib", "stubs.rb")),
		builders:   writer.New(path.Join("lib", "builders.rb")),
		parsers:    writer.New(path.Join("lib", "parsers.rb")),
		errors:     writer.New(path.Join("lib", "errors.rb")),
	}

	if err := gen.GenerateErrors(m, svc, files.errors); err != nil {
		return nil, err
	}

	builderClasses := map[model.ShapeID]string{}
	parserResults := map[model.ShapeID]protocol.ParserResult{}

	for _, op := range ops {
		shapes, err := m.Walk(op.ID)
		if err != nil {
			return nil, err
		}
		for _, shape := range shapes {
			if err := emitShapeOnce(m, shape, gen, tracker, files.types, files.validators, files.params, files.stubs); err != nil {
				return nil, err
			}
		}

		if tracker.ShouldEmit(op.ID, "builder") {
			result, err := gen.GenerateBuilder(m, svc, op, files.builders)
			if err != nil {
				sink.Emit(ctx, Diagnostic{Severity: SeverityError, Code: "builder_failed", ShapeID: op.ID, Message: err.Error()})
				return nil, err
			}
			builderClasses[op.ID] = result.BuilderClass
		}
		if tracker.ShouldEmit(op.ID, "parser") {
			result, err := gen.GenerateParser(m, svc, op, files.parsers)
			if err != nil {
				sink.Emit(ctx, Diagnostic{Severity: SeverityError, Code: "parser_failed", ShapeID: op.ID, Message: err.Error()})
				return nil, err
			}
			parserResults[op.ID] = result
		}
		if opStubGen, ok := gen.(operationStubGenerator); ok && tracker.ShouldEmit(op.ID, "operation_stub") {
			if err := opStubGen.GenerateOperationStub(m, op, files.stubs); err != nil {
				return nil, err
			}
		}
	}

	for _, w := range []*writer.Writer{files.types, files.validators, files.params, files.stubs, files.builders, files.parsers, files.errors} {
		if err := man.AddWriter(w); err != nil {
			return nil, err
		}
	}

	clientW := writer.New(path.Join("lib", "client.rb"))
	configW := writer.New(path.Join("lib", "config.rb"))
	if err := GenerateClient(m, svc, gen, sym, ops, builderClasses, parserResults, clientW); err != nil {
		return nil, err
	}
	if err := GenerateConfig(gen, configW); err != nil {
		return nil, err
	}
	if err := man.AddWriter(clientW); err != nil {
		return nil, err
	}
	if err := man.AddWriter(configW); err != nil {
		return nil, err
	}
	if err := man.AddWriter(GenerateEntrypoint(sym.Namespace())); err != nil {
		return nil, err
	}

	return &Result{Manifest: man, Diagnostics: sink.All()}, nil
}

func emitShapeOnce(m *model.Model, shape *model.Shape, gen protocol.Generator, tracker *visitor.EmissionTracker, typesW, validatorsW, paramsW, stubsW *writer.Writer) error {
	switch shape.Kind {
	case model.KindStructure, model.KindUnion:
		if tg, ok := gen.(typeGenerator); ok && tracker.ShouldEmit(shape.ID, "type") {
			if err := tg.GenerateType(m, shape, typesW); err != nil {
				return err
			}
		}
		if vg, ok := gen.(validatorGenerator); ok && tracker.ShouldEmit(shape.ID, "validator") {
			if err := vg.GenerateValidator(m, shape, validatorsW); err != nil {
				return err
			}
		}
		if pg, ok := gen.(paramsGenerator); ok && tracker.ShouldEmit(shape.ID, "params") {
			if err := pg.GenerateParams(m, shape, paramsW); err != nil {
				return err
			}
		}
		fallthrough
	case model.KindList, model.KindSet, model.KindMap:
		if tracker.ShouldEmit(shape.ID, "stub") {
			if err := gen.GenerateStubs(m, shape, stubsW); err != nil {
				return err
			}
		}
	}
	return nil
}
