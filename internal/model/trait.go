package model

// TraitKind enumerates the trait kinds this generator understands (spec §3).
type TraitKind string

const (
	TraitHTTP               TraitKind = "http"
	TraitHTTPLabel          TraitKind = "httpLabel"
	TraitHTTPQuery          TraitKind = "httpQuery"
	TraitHTTPQueryParams    TraitKind = "httpQueryParams"
	TraitHTTPHeader         TraitKind = "httpHeader"
	TraitHTTPPrefixHeaders  TraitKind = "httpPrefixHeaders"
	TraitHTTPPayload        TraitKind = "httpPayload"
	TraitHTTPResponseCode   TraitKind = "httpResponseCode"
	TraitMediaType          TraitKind = "mediaType"
	TraitTimestampFormat    TraitKind = "timestampFormat"
	TraitRequired           TraitKind = "required"
	TraitStreaming          TraitKind = "streaming"
	TraitError              TraitKind = "error"
	TraitIdempotent         TraitKind = "idempotent"
	TraitReadonly           TraitKind = "readonly"
	TraitSparse             TraitKind = "sparse"
	TraitEndpoint           TraitKind = "endpoint"
	TraitHostLabel          TraitKind = "hostLabel"
	TraitHTTPChecksumReqd   TraitKind = "httpChecksumRequired"
	TraitIdempotencyToken   TraitKind = "idempotencyToken"
	TraitLength             TraitKind = "length"
	TraitRange              TraitKind = "range"
	TraitEnum               TraitKind = "enum"
)

// TimestampFormat enumerates the three wire timestamp encodings spec §4.H's
// serialization table names.
type TimestampFormat string

const (
	TimestampEpochSeconds TimestampFormat = "epoch-seconds"
	TimestampHTTPDate     TimestampFormat = "http-date"
	TimestampDateTime     TimestampFormat = "date-time"
)

// HTTPTrait carries the structured value of an `http` trait.
type HTTPTrait struct {
	Method string
	URI    string
	Code   int
}

// ErrorTrait carries the structured value of an `error` trait.
type ErrorTrait struct {
	Kind string // "client" or "server"
}

// Trait is a named annotation, optionally carrying structured data. Exactly
// one of the typed fields below is meaningful for a given Name; string-only
// traits (httpQuery, httpHeader, httpPrefixHeaders, endpoint, timestampFormat)
// use Value.
type Trait struct {
	Name  TraitKind
	Value string     // e.g. header/query name, prefix, endpoint host pattern, format
	HTTP  *HTTPTrait // set when Name == TraitHTTP
	Error *ErrorTrait
}

// findTrait returns the first trait of the given kind in traits, if any.
func findTrait(traits []Trait, kind TraitKind) (Trait, bool) {
	for _, t := range traits {
		if t.Name == kind {
			return t, true
		}
	}
	return Trait{}, false
}

// HasTraitIn reports whether kind is present in traits.
func HasTraitIn(traits []Trait, kind TraitKind) bool {
	_, ok := findTrait(traits, kind)
	return ok
}
