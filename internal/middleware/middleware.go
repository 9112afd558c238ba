// Package middleware implements the middleware model (component E): typed,
// immutable-once-built middleware records attached to a named pipeline step
// with per-service/per-operation predicates, plus the ordered stack
// composition that assembles them per operation.
package middleware

import (
	smithymiddleware "github.com/aws/smithy-go/middleware"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// Step is one of the five pipeline phases spec §4.L's state machine
// transitions between (INITIALIZED → SERIALIZED → BUILT → SIGNED → SENT →
// DESERIALIZED → DONE happens as each step's middleware completes).
type Step string

const (
	StepInitialize  Step = "INITIALIZE"
	StepSerialize   Step = "SERIALIZE"
	StepBuild       Step = "BUILD"
	StepFinalize    Step = "FINALIZE"
	StepDeserialize Step = "DESERIALIZE"
)

var stepRank = map[Step]int{
	StepInitialize:  0,
	StepSerialize:   1,
	StepBuild:       2,
	StepFinalize:    3,
	StepDeserialize: 4,
}

// RequestContext is the "ctx" argument threaded through operation_params and
// the stack invocation itself (spec §4.E, §4.L: "Invokes the stack with a
// context carrying the operation name, the logger, the request shell, and
// the response shell"). It carries a smithy-go Metadata bag because that
// package is the real Go analogue of "mutable per-request context threaded
// through a named pipeline" (spec §5) — the thing this generator's own
// stack model describes without executing.
type RequestContext struct {
	OperationName      string
	LoggerExpr         string
	RequestShellExpr   string
	ResponseShellExpr  string
	Metadata           smithymiddleware.Metadata
}

// ServicePredicate reports whether a middleware record applies to svc at
// all. The default predicate (set by NewRecord) always returns true.
type ServicePredicate func(m *model.Model, svc *model.Service) bool

// OperationPredicate reports whether a middleware record applies to a
// specific operation within svc.
type OperationPredicate func(m *model.Model, svc *model.Service, op *model.Shape) bool

// OperationParamsFunc produces the per-operation code-fragment arguments a
// middleware record's render call needs (spec §4.E: "(ctx, operation) →
// map<string,code-fragment>").
type OperationParamsFunc func(ctx RequestContext, op *model.Shape) (map[string]string, error)

// RenderHook overrides the default "stack.use(klass, k: v, …)" rendering
// for a record.
type RenderHook func(klass string, params map[string]string) string

// Record is a single middleware's configuration. Once returned from
// NewRecord (and any With* calls), it is treated as immutable — every With*
// method returns a modified copy rather than mutating the receiver (spec
// §4.E: "Built from immutable-builder; immutable thereafter").
type Record struct {
	Klass              string
	Step               Step
	Order              int8
	ServicePredicate    ServicePredicate
	OperationPredicate  OperationPredicate
	ClientConfig        []string
	OperationParams     OperationParamsFunc
	AdditionalParams    map[string]string
	RenderHook          RenderHook
	ExtraFiles          func() ([]string, error)
}

// NewRecord returns a Record for klass attached to step, with always-true
// predicates and no params.
func NewRecord(klass string, step Step) Record {
	return Record{
		Klass:              klass,
		Step:               step,
		ServicePredicate:   func(*model.Model, *model.Service) bool { return true },
		OperationPredicate: func(*model.Model, *model.Service, *model.Shape) bool { return true },
	}
}

func (r Record) WithOrder(order int8) Record                          { r.Order = order; return r }
func (r Record) WithServicePredicate(p ServicePredicate) Record        { r.ServicePredicate = p; return r }
func (r Record) WithOperationPredicate(p OperationPredicate) Record    { r.OperationPredicate = p; return r }
func (r Record) WithClientConfig(keys ...string) Record                { r.ClientConfig = keys; return r }
func (r Record) WithOperationParams(f OperationParamsFunc) Record       { r.OperationParams = f; return r }
func (r Record) WithAdditionalParams(params map[string]string) Record  { r.AdditionalParams = params; return r }
func (r Record) WithRenderHook(h RenderHook) Record                    { r.RenderHook = h; return r }
func (r Record) WithExtraFiles(f func() ([]string, error)) Record      { r.ExtraFiles = f; return r }

// Render produces the "stack.use(...)" source line for this record given
// its resolved params (operation_params merged over additional_params).
func (r Record) Render(resolvedParams map[string]string) string {
	if r.RenderHook != nil {
		return r.RenderHook(r.Klass, resolvedParams)
	}
	if len(resolvedParams) == 0 {
		return "stack.use(" + r.Klass + ")"
	}
	out := "stack.use(" + r.Klass
	for _, k := range sortedKeys(resolvedParams) {
		out += ", " + k + ": " + resolvedParams[k]
	}
	return out + ")"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
