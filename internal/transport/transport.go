// Package transport implements the application-transport model (component
// F): the HTTP-like transport fragments (request/response/client
// constructors and default middleware) every protocol generator builds on.
package transport

import (
	"strconv"

	"github.com/AndrewFossAWS/smithy-ruby/internal/middleware"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// ConfigKey describes one configuration value contributed to the emitted
// client's config class (spec §4.L).
type ConfigKey struct {
	Name                   string
	Type                   string
	Default                string
	Doc                    string
	AllowOperationOverride bool
}

// ApplicationTransport captures an HTTP-like transport as the request,
// response and client constructor fragments plus the default middleware it
// contributes to every operation (spec §4.F).
type ApplicationTransport struct {
	RequestConstructor  string
	ResponseConstructor string
	ClientConstructor   string
	ConfigKeys          []ConfigKey

	// DefaultMiddleware builds the transport's base middleware list for a
	// single operation, parameterized by the protocol's data/error parser
	// class names, the success status code, and the operation's modeled
	// errors in model order (spec §4.F: "Parse (DESERIALIZE, parameterized
	// by the operation's data parser, error parser, success status code,
	// and error list)").
	DefaultMiddleware func(dataParserClass, errorParserClass string, successCode int, errorClasses []string) []middleware.Record
}

// DefaultHTTP returns the default HTTP transport: Build (SERIALIZE),
// ContentLength (BUILD, skipped for non-finite streaming payloads),
// ContentMD5 (BUILD, only under httpChecksumRequired), Parse (DESERIALIZE).
func DefaultHTTP() *ApplicationTransport {
	return &ApplicationTransport{
		RequestConstructor:  "Request.new(endpoint: config.endpoint)",
		ResponseConstructor: "Response.new(body: output_stream)",
		ClientConstructor:   "HTTP::Client.new(logger: config.logger, log_level: config.log_level, http_wire_trace: config.http_wire_trace)",
		ConfigKeys: []ConfigKey{
			{Name: "endpoint", Type: "String", Doc: "Service endpoint.", AllowOperationOverride: true},
			{Name: "logger", Type: "Logger", Default: "Logger.new($stdout)", Doc: "Client logger."},
			{Name: "log_level", Type: "Symbol", Default: ":info", Doc: "Log level for wire tracing."},
			{Name: "http_wire_trace", Type: "bool", Default: "false", Doc: "Log full HTTP wire traffic."},
		},
		DefaultMiddleware: func(dataParserClass, errorParserClass string, successCode int, errorClasses []string) []middleware.Record {
			return []middleware.Record{
				middleware.NewRecord("Middleware::Build", middleware.StepSerialize).WithOrder(0),
				middleware.NewRecord("Middleware::ContentLength", middleware.StepBuild).
					WithOrder(0).
					WithOperationPredicate(func(m *model.Model, _ *model.Service, op *model.Shape) bool {
						return !hasNonFiniteStreamingPayload(m, op)
					}),
				middleware.NewRecord("Middleware::ContentMD5", middleware.StepBuild).
					WithOrder(10).
					WithOperationPredicate(func(m *model.Model, _ *model.Service, op *model.Shape) bool {
						return m.HasTrait(op, nil, model.TraitHTTPChecksumReqd)
					}),
				middleware.NewRecord("Middleware::Parse", middleware.StepDeserialize).
					WithOrder(0).
					WithAdditionalParams(map[string]string{
						"data_parser":    dataParserClass,
						"error_parser":   errorParserClass,
						"success_status": strconv.Itoa(successCode),
						"error_classes":  "[" + joinQuoted(errorClasses) + "]",
					}),
			}
		},
	}
}

// hasNonFiniteStreamingPayload reports whether op's input carries a
// @httpPayload member whose target is a @streaming blob/union, i.e. one
// whose length cannot be known ahead of building the request body.
func hasNonFiniteStreamingPayload(m *model.Model, op *model.Shape) bool {
	if op.Input == nil {
		return false
	}
	input, err := m.ExpectShape(*op.Input)
	if err != nil {
		return false
	}
	for _, mem := range input.Members {
		member := mem
		if !m.HasTrait(input, &member, model.TraitHTTPPayload) {
			continue
		}
		target, err := m.ExpectShape(member.Target)
		if err != nil {
			continue
		}
		if m.HasTrait(target, nil, model.TraitStreaming) {
			return true
		}
	}
	return false
}

func joinQuoted(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}
