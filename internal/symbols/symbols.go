// Package symbols implements the deterministic shape-id → emitted-name
// mapping (component B): types, operations, builders, parsers, stubs and
// member names, including escaped/reserved-name handling.
package symbols

import (
	"strings"
	"unicode"

	goacodegen "goa.design/goa/v3/codegen"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// Category distinguishes the emitter a symbol is requested for; the same
// shape has a different class name per category (e.g. the builder class vs
// the parser class for an operation).
type Category string

const (
	CategoryType      Category = "type"
	CategoryBuilder   Category = "builder"
	CategoryParser    Category = "parser"
	CategoryStub      Category = "stub"
	CategoryValidator Category = "validator"
	CategoryParams    Category = "params"
	CategoryError     Category = "error"
)

// EmittedSymbol is the name/path the symbol provider produced for a shape in
// a given category (spec §3).
type EmittedSymbol struct {
	Qualified   string
	Unqualified string
	Namespace   string
	FilePath    string
}

// kindPrefix supplies the fixed token a leading-digit shape name is prefixed
// with, so the emitted identifier is never itself invalid (spec §4.B).
var kindPrefix = map[model.Kind]string{
	model.KindStructure: "Struct____",
	model.KindUnion:      "Union____",
	model.KindList:       "List____",
	model.KindSet:        "Set____",
	model.KindMap:        "Map____",
	model.KindOperation:  "Operation____",
}

var categorySuffix = map[Category]string{
	CategoryBuilder:   "Builder",
	CategoryParser:    "Parser",
	CategoryStub:      "Stub",
	CategoryValidator: "Validator",
	CategoryParams:    "Params",
	CategoryError:     "",
	CategoryType:      "",
}

// Provider is a stateless shape-id → name mapper beyond its memoization
// cache (spec §4.B: "stateless beyond a memoization cache keyed by
// ShapeId"). It is safe for reuse across categories but not across models
// with colliding namespaces/names meaning different things.
type Provider struct {
	namespace string
	cache     map[cacheKey]EmittedSymbol
	memberMu  map[string]string
}

type cacheKey struct {
	id       model.ShapeID
	category Category
}

// Namespace returns the target module namespace symbols are emitted under.
func (p *Provider) Namespace() string { return p.namespace }

// NewProvider returns a Provider that emits symbols under the given target
// namespace (a Ruby module name such as "Acme").
func NewProvider(namespace string) *Provider {
	return &Provider{
		namespace: namespace,
		cache:     make(map[cacheKey]EmittedSymbol),
		memberMu:  make(map[string]string),
	}
}

// ClassName returns the PascalCase emitted class name for shape in category,
// memoized per (shape, category).
func (p *Provider) ClassName(s *model.Shape, category Category) EmittedSymbol {
	key := cacheKey{id: s.ID, category: category}
	if sym, ok := p.cache[key]; ok {
		return sym
	}
	base := pascalCase(s.ID.Name)
	if startsWithDigit(base) {
		base = kindPrefix[s.Kind] + base
	}
	name := base + categorySuffix[category]
	sym := EmittedSymbol{
		Qualified:   p.namespace + "::" + name,
		Unqualified: name,
		Namespace:   p.namespace,
		FilePath:    fileNameFor(category),
	}
	p.cache[key] = sym
	return sym
}

// MemberName returns the snake_case emitted accessor name for a member,
// suffixed with a stable disambiguator when it collides with a reserved
// word. Unlike ClassName this is pure: member names carry no shape-id
// identity worth memoizing beyond simple string interning, but callers that
// want a cross-shape-stable disambiguator (two members literally named
// "class" in the same structure is impossible, but the same word appears
// across many shapes) get one from a single shared table.
func (p *Provider) MemberName(name string) string {
	if sn, ok := p.memberMu[name]; ok {
		return sn
	}
	sn := snakeCase(name)
	if IsReserved(sn) {
		sn += "_value"
	}
	p.memberMu[name] = sn
	return sn
}

// EnumConstant returns the enum value verbatim, per spec §4.B ("Enum values
// in the model are exposed verbatim as string constants").
func (p *Provider) EnumConstant(value string) string { return value }

func fileNameFor(category Category) string {
	switch category {
	case CategoryBuilder:
		return "builders.rb"
	case CategoryParser:
		return "parsers.rb"
	case CategoryStub:
		return "stubs.rb"
	case CategoryValidator:
		return "validators.rb"
	case CategoryParams:
		return "params.rb"
	case CategoryError:
		return "errors.rb"
	default:
		return "types.rb"
	}
}

func startsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsDigit(rune(s[0]))
}

// pascalCase builds a PascalCase identifier with goa/v3's own case
// converter, the same helper the teacher's naming package layers its own
// sanitizers on top of (codegen/naming/naming.go).
func pascalCase(name string) string { return goacodegen.Goify(name, true) }

// snakeCase builds a snake_case identifier, reusing goa/v3's SnakeCase
// rather than hand-rolling a second case converter.
func snakeCase(name string) string { return strings.ToLower(goacodegen.SnakeCase(name)) }
