package generator

import (
	"fmt"
	"strings"

	"github.com/AndrewFossAWS/smithy-ruby/internal/middleware"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// GenerateClient appends the service's client class to w: one method per
// operation, each building a request through the operation's builder,
// composing its middleware stack, and running it (spec §4.L).
func GenerateClient(m *model.Model, svc *model.Service, gen protocol.Generator, sym *symbols.Provider, ops []*model.Shape, builders map[model.ShapeID]string, parsers map[model.ShapeID]protocol.ParserResult, w *writer.Writer) error {
	svcSym := sym.ClassName(&model.Shape{ID: svc.ID, Kind: model.KindService}, symbols.CategoryType)
	clientName := svcSym.Unqualified + "Client"

	w.OpenBlock("class $name", "end", map[string]string{"name": clientName})
	w.OpenBlock("def initialize(config: Config.new)", "end", nil)
	w.Write("@config = config", nil)
	w.CloseBlock(nil)
	w.Newline()

	for _, op := range ops {
		if err := emitClientMethod(m, svc, gen, sym, op, builders, parsers, w); err != nil {
			return err
		}
	}

	w.CloseBlock(nil)
	w.Newline()
	return nil
}

func emitClientMethod(m *model.Model, svc *model.Service, gen protocol.Generator, sym *symbols.Provider, op *model.Shape, builders map[model.ShapeID]string, parsers map[model.ShapeID]protocol.ParserResult, w *writer.Writer) error {
	opHTTP, _ := m.GetTrait(op, nil, model.TraitHTTP)
	successCode := 200
	if opHTTP.HTTP != nil && opHTTP.HTTP.Code != 0 {
		successCode = opHTTP.HTTP.Code
	}

	parserResult := parsers[op.ID]
	base := gen.ApplicationTransport().DefaultMiddleware(parserResult.ParserClass, restjsonErrorParserClass, successCode, parserResult.ErrorClasses)
	protoAdditions := gen.ClientMiddleware(m, svc, op)
	stack, err := middleware.Compose(m, svc, op, base, protoAdditions, nil)
	if err != nil {
		return fmt.Errorf("generator: composing middleware for %s: %w", op.ID, err)
	}

	methodName := sym.MemberName(op.ID.Name)
	w.OpenBlock(fmt.Sprintf("def %s(params = {})", methodName), "end", nil)
	w.Write("context = Smithy::RequestContext.new(operation_name: $op, logger: @config.logger)", map[string]string{"op": rubyStringLiteral(op.ID.Name)})
	if builderClass, ok := builders[op.ID]; ok {
		w.Write(builderClass+".build(params, context: context)", nil)
	}
	w.Write("stack = Smithy::MiddlewareStack.new", nil)
	for _, rec := range stack.Records {
		params := make(map[string]string, len(rec.AdditionalParams))
		for k, v := range rec.AdditionalParams {
			params[k] = v
		}
		if rec.OperationParams != nil {
			opParams, err := rec.OperationParams(middleware.RequestContext{OperationName: op.ID.Name, LoggerExpr: "@config.logger"}, op)
			if err != nil {
				return fmt.Errorf("generator: operation params of %s for %s: %w", rec.Klass, op.ID, err)
			}
			for k, v := range opParams {
				params[k] = v
			}
		}
		w.Write(rec.Render(params), nil)
	}
	w.Write("stack.run(context)", nil)
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

// restjsonErrorParserClass is the fixed discriminator module every
// restJson1-family protocol's Parse middleware dispatches unknown-status
// errors through (spec §4.I).
const restjsonErrorParserClass = "Restjson::ErrorParser"

func rubyStringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
