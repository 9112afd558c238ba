package restjson

import (
	"fmt"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// boundOutput classifies an operation output's members the way boundInput
// does for requests, plus the one output-only binding, @httpResponseCode
// (spec §4.I).
type boundOutput struct {
	ResponseCode  *model.Member
	Headers       []model.Member
	PrefixHeaders []model.Member
	Payload       *model.Member
	Body          []model.Member
}

func classifyOutput(m *model.Model, output *model.Shape) boundOutput {
	var b boundOutput
	if output == nil {
		return b
	}
	for _, mem := range output.Members {
		member := mem
		switch {
		case m.HasTrait(output, &member, model.TraitHTTPResponseCode):
			rc := member
			b.ResponseCode = &rc
		case m.HasTrait(output, &member, model.TraitHTTPPrefixHeaders):
			b.PrefixHeaders = append(b.PrefixHeaders, member)
		case m.HasTrait(output, &member, model.TraitHTTPHeader):
			b.Headers = append(b.Headers, member)
		case m.HasTrait(output, &member, model.TraitHTTPPayload):
			p := member
			b.Payload = &p
		default:
			b.Body = append(b.Body, member)
		}
	}
	return b
}

// GenerateParser appends op's HTTP response parser class to w: a success
// path that binds headers/payload/body into the output shape, and an
// error path that dispatches on the response's discriminator to the
// operation's modeled error classes, falling back to a generic error for
// any unrecognized code (spec §4.I).
func GenerateParser(m *model.Model, svc *model.Service, op *model.Shape, sym *symbols.Provider, w *writer.Writer) (protocol.ParserResult, error) {
	httpTrait, ok := m.GetTrait(op, nil, model.TraitHTTP)
	successCode := 200
	if ok && httpTrait.HTTP != nil && httpTrait.HTTP.Code != 0 {
		successCode = httpTrait.HTTP.Code
	}

	parserSym := sym.ClassName(op, symbols.CategoryParser)

	var output *model.Shape
	if op.Output != nil {
		out, err := m.ExpectShape(*op.Output)
		if err != nil {
			return protocol.ParserResult{}, err
		}
		output = out
	}
	bound := classifyOutput(m, output)

	var errorClasses []string
	for _, errID := range op.Errors {
		errShape, err := m.ExpectShape(errID)
		if err != nil {
			return protocol.ParserResult{}, err
		}
		errorClasses = append(errorClasses, sym.ClassName(errShape, symbols.CategoryError).Qualified)
	}

	w.OpenBlock("class $name", "end", map[string]string{"name": parserSym.Unqualified})
	w.OpenBlock("def self.parse(response, context:)", "end", nil)
	w.OpenBlock(fmt.Sprintf("if response.status == %d", successCode), "else\n  Restjson::ErrorParser.parse(response, context: context)\nend", nil)
	emitSuccessParse(w, m, output, bound, sym)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()

	return protocol.ParserResult{ParserClass: parserSym.Qualified, ErrorClasses: errorClasses}, nil
}

func emitSuccessParse(w *writer.Writer, m *model.Model, output *model.Shape, bound boundOutput, sym *symbols.Provider) {
	if output == nil {
		w.Write("nil", nil)
		return
	}
	outSym := sym.ClassName(output, symbols.CategoryType)
	w.Write("data = {}", nil)

	if bound.ResponseCode != nil {
		key := sym.MemberName(bound.ResponseCode.Name)
		w.Write("data[:$key] = response.status", map[string]string{"key": key})
	}
	for _, member := range bound.Headers {
		key := sym.MemberName(member.Name)
		headerName := headerKeyFor(m, member)
		if isListLikeTarget(m, member.Target) {
			w.Write("data[:$key] = Restjson.split_header_list(response.headers[$h])", map[string]string{"key": key, "h": rubyString(headerName)})
		} else {
			w.Write("data[:$key] = response.headers[$h]", map[string]string{"key": key, "h": rubyString(headerName)})
		}
	}
	for _, member := range bound.PrefixHeaders {
		key := sym.MemberName(member.Name)
		prefix := prefixFor(m, member)
		w.Write("data[:$key] = Restjson.collect_prefixed_headers(response.headers, $p)", map[string]string{"key": key, "p": rubyString(prefix)})
	}
	if bound.Payload != nil {
		key := sym.MemberName(bound.Payload.Name)
		w.Write("data[:$key] = response.body", map[string]string{"key": key})
	} else if len(bound.Body) > 0 {
		w.Write("Restjson.parse_body(response.body).each { |k, v| data[k.to_sym] = v }", nil)
	}
	w.Write("$type.new(**data)", map[string]string{"type": outSym.Qualified})
}
