package restjson

import (
	"fmt"
	"strings"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// uriSegment is one piece of a parsed "{path+}"-style URI template: either
// a literal run of characters or a label reference.
type uriSegment struct {
	Literal string
	Label   string
	Greedy  bool
}

// splitURITemplate separates an @http trait's uri into its path and
// (literal, pre-"?") static query string.
func splitURITemplate(uri string) (path, staticQuery string) {
	if idx := strings.IndexByte(uri, '?'); idx >= 0 {
		return uri[:idx], uri[idx+1:]
	}
	return uri, ""
}

func splitPathSegments(path string) []uriSegment {
	var segs []uriSegment
	i := 0
	for i < len(path) {
		if path[i] == '{' {
			end := strings.IndexByte(path[i:], '}')
			if end < 0 {
				segs = append(segs, uriSegment{Literal: path[i:]})
				break
			}
			token := path[i+1 : i+end]
			greedy := strings.HasSuffix(token, "+")
			segs = append(segs, uriSegment{Label: strings.TrimSuffix(token, "+"), Greedy: greedy})
			i += end + 1
			continue
		}
		j := strings.IndexByte(path[i:], '{')
		if j < 0 {
			segs = append(segs, uriSegment{Literal: path[i:]})
			break
		}
		segs = append(segs, uriSegment{Literal: path[i : i+j]})
		i += j
	}
	return segs
}

// boundInput classifies an operation input's members by their HTTP binding
// trait (spec §4.H): at most one of label/query/header/prefixHeader/payload
// applies to a given member.
type boundInput struct {
	Labels        map[string]model.Member
	Query         []model.Member
	QueryParams   *model.Member
	Headers       []model.Member
	PrefixHeaders []model.Member
	Payload       *model.Member
	Body          []model.Member // unbound members, serialized as the JSON body
}

func classifyInput(m *model.Model, input *model.Shape) boundInput {
	b := boundInput{Labels: map[string]model.Member{}}
	if input == nil {
		return b
	}
	for _, mem := range input.Members {
		member := mem
		switch {
		case m.HasTrait(input, &member, model.TraitHTTPLabel):
			b.Labels[member.Name] = member
		case m.HasTrait(input, &member, model.TraitHTTPQueryParams):
			cp := member
			b.QueryParams = &cp
		case m.HasTrait(input, &member, model.TraitHTTPQuery):
			b.Query = append(b.Query, member)
		case m.HasTrait(input, &member, model.TraitHTTPPrefixHeaders):
			b.PrefixHeaders = append(b.PrefixHeaders, member)
		case m.HasTrait(input, &member, model.TraitHTTPHeader):
			b.Headers = append(b.Headers, member)
		case m.HasTrait(input, &member, model.TraitHTTPPayload):
			p := member
			b.Payload = &p
		default:
			b.Body = append(b.Body, member)
		}
	}
	return b
}

func isListLikeTarget(m *model.Model, targetID model.ShapeID) bool {
	target, err := m.ExpectShape(targetID)
	if err != nil {
		return false
	}
	return target.Kind == model.KindList || target.Kind == model.KindSet
}

// GenerateBuilder appends op's HTTP request builder class to w (spec
// §4.H): it binds the operation's input members to path labels, query
// parameters, headers and body per their HTTP binding traits and emits a
// `build(params, context:)` class method returning a populated request.
func GenerateBuilder(m *model.Model, op *model.Shape, sym *symbols.Provider, w *writer.Writer) (protocol.BuilderResult, error) {
	httpTrait, ok := m.GetTrait(op, nil, model.TraitHTTP)
	if !ok || httpTrait.HTTP == nil {
		return protocol.BuilderResult{}, fmt.Errorf("restjson: operation %s has no http trait", op.ID)
	}
	builderSym := sym.ClassName(op, symbols.CategoryBuilder)

	var input *model.Shape
	if op.Input != nil {
		in, err := m.ExpectShape(*op.Input)
		if err != nil {
			return protocol.BuilderResult{}, err
		}
		input = in
	}
	bound := classifyInput(m, input)

	w.OpenBlock("class $name", "end", map[string]string{"name": builderSym.Unqualified})
	w.OpenBlock("def self.build(params, context:)", "end", nil)
	w.Write("request = context.request", nil)
	w.Write("request.http_method = $method", map[string]string{"method": rubyString(httpTrait.HTTP.Method)})

	if err := emitPath(w, m, httpTrait.HTTP.URI, bound, sym); err != nil {
		return protocol.BuilderResult{}, err
	}
	emitQuery(w, m, httpTrait.HTTP.URI, bound, sym)
	emitHeaders(w, m, bound, sym)
	emitBody(w, m, bound, sym)

	w.Write("request", nil)
	w.CloseBlock(nil)
	w.CloseBlock(nil)
	w.Newline()

	return protocol.BuilderResult{BuilderClass: builderSym.Qualified}, nil
}

func emitPath(w *writer.Writer, m *model.Model, uri string, bound boundInput, sym *symbols.Provider) error {
	path, _ := splitURITemplate(uri)
	segs := splitPathSegments(path)

	var parts []string
	for _, seg := range segs {
		if seg.Label == "" {
			parts = append(parts, rubyString(seg.Literal))
			continue
		}
		member, ok := bound.Labels[seg.Label]
		if !ok {
			return fmt.Errorf("restjson: uri label %q has no bound input member", seg.Label)
		}
		accessor := "params." + sym.MemberName(member.Name)
		escapeFn := "Restjson.escape_path_segment"
		if seg.Greedy {
			escapeFn = "Restjson.escape_greedy_label"
		}
		w.OpenBlock("if "+accessor+".nil? || "+accessor+".to_s.empty?", "end", nil)
		w.Write("raise Smithy::LabelBindingError, $msg", map[string]string{"msg": rubyString(seg.Label + " must not be empty or nil")})
		w.CloseBlock(nil)
		parts = append(parts, fmt.Sprintf("%s(%s.to_s)", escapeFn, accessor))
	}
	w.Write("request.path = "+strings.Join(parts, " + "), nil)
	return nil
}

func emitQuery(w *writer.Writer, m *model.Model, uri string, bound boundInput, sym *symbols.Provider) {
	_, staticQuery := splitURITemplate(uri)
	if staticQuery != "" {
		w.Write("request.query.merge!(Restjson.parse_static_query($q))", map[string]string{"q": rubyString(staticQuery)})
	}
	for _, member := range bound.Query {
		key := queryKeyFor(m, member)
		accessor := "params." + sym.MemberName(member.Name)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		if isListLikeTarget(m, member.Target) {
			w.Write("request.query[$key] = "+accessor, map[string]string{"key": rubyString(key)})
		} else {
			w.Write("request.query[$key] = "+accessor+".to_s", map[string]string{"key": rubyString(key)})
		}
		w.CloseBlock(nil)
	}
	if bound.QueryParams != nil {
		accessor := "params." + sym.MemberName(bound.QueryParams.Name)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		w.Write("request.query.merge!("+accessor+")", nil)
		w.CloseBlock(nil)
	}
}

func queryKeyFor(m *model.Model, member model.Member) string {
	if t, ok := m.GetTrait(nil, &member, model.TraitHTTPQuery); ok && t.Value != "" {
		return t.Value
	}
	return member.Name
}

func emitHeaders(w *writer.Writer, m *model.Model, bound boundInput, sym *symbols.Provider) {
	for _, member := range bound.Headers {
		key := headerKeyFor(m, member)
		accessor := "params." + sym.MemberName(member.Name)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		if isListLikeTarget(m, member.Target) {
			w.Write("request.headers[$key] = Restjson.join_header_list("+accessor+")", map[string]string{"key": rubyString(key)})
		} else {
			w.Write("request.headers[$key] = "+accessor+".to_s", map[string]string{"key": rubyString(key)})
		}
		w.CloseBlock(nil)
	}
	for _, member := range bound.PrefixHeaders {
		prefix := prefixFor(m, member)
		accessor := "params." + sym.MemberName(member.Name)
		w.OpenBlock("unless "+accessor+".nil?", "end", nil)
		w.OpenBlock(accessor+".each do |k, v|", "end", nil)
		w.Write("request.headers[$prefix + k.to_s] = v.to_s", map[string]string{"prefix": rubyString(prefix)})
		w.CloseBlock(nil)
		w.CloseBlock(nil)
	}
}

func headerKeyFor(m *model.Model, member model.Member) string {
	if t, ok := m.GetTrait(nil, &member, model.TraitHTTPHeader); ok && t.Value != "" {
		return t.Value
	}
	return member.Name
}

func prefixFor(m *model.Model, member model.Member) string {
	if t, ok := m.GetTrait(nil, &member, model.TraitHTTPPrefixHeaders); ok {
		return t.Value
	}
	return ""
}

func emitBody(w *writer.Writer, m *model.Model, bound boundInput, sym *symbols.Provider) {
	switch {
	case bound.Payload != nil:
		accessor := "params." + sym.MemberName(bound.Payload.Name)
		w.Write("request.body = "+accessor, nil)
		if mt, ok := m.GetTrait(nil, bound.Payload, model.TraitMediaType); ok && mt.Value != "" {
			w.Write("request.headers['Content-Type'] = $mt", map[string]string{"mt": rubyString(mt.Value)})
		}
	case len(bound.Body) > 0:
		w.Write("request.headers['Content-Type'] = 'application/json'", nil)
		w.Write("request.body = Restjson.build_body(params)", nil)
	}
}

func rubyString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
