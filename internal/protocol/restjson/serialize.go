// Package restjson implements the restJson1-style protocol generator
// (components H, I, J, K): HTTP request builders, response parsers,
// default-value stubs, and the shared error/type/validator/params
// machinery every operation's generated Ruby leans on.
package restjson

import (
	"fmt"
	"strings"
	"time"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

const pathUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~"

// EscapePathSegment percent-encodes s for a single, non-greedy HTTP label
// path segment: every byte outside the unreserved set is escaped,
// including "/" (spec §4.H: "URL-escaping rules").
func EscapePathSegment(s string) string { return escape(s, "") }

// EscapeGreedyLabel percent-encodes s for a "{path+}" greedy label: "/" is
// preserved so the label can still span segments, but every other reserved
// byte (notably "%" itself) is escaped. "a/%/c" becomes "a/%25/c".
func EscapeGreedyLabel(s string) string { return escape(s, "/") }

// EscapeQueryComponent percent-encodes s for a query string key or value.
func EscapeQueryComponent(s string) string { return escape(s, "") }

func escape(s, extraSafe string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(pathUnreserved, c) >= 0 || strings.IndexByte(extraSafe, c) >= 0 {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// UnescapePathSegment reverses EscapePathSegment/EscapeGreedyLabel for
// round-trip tests; "%2F" and friends decode back to their raw byte.
func UnescapePathSegment(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("restjson: truncated percent-escape in %q", s)
		}
		var v int
		if _, err := fmt.Sscanf(s[i+1:i+3], "%02X", &v); err != nil {
			return "", fmt.Errorf("restjson: invalid percent-escape %q: %w", s[i:i+3], err)
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return b.String(), nil
}

// Location is an HTTP binding site a member's value is serialized to or
// parsed from (spec §4.H/§4.I).
type Location string

const (
	LocationLabel  Location = "label"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationBody   Location = "body"
)

// DefaultTimestampFormat returns the wire format a timestamp uses at
// location absent an explicit @timestampFormat trait (spec §4.H's
// serialization table: headers default to http-date per RFC 7231,
// labels/query default to date-time per RFC 3339, and restJson1's document
// body defaults to epoch-seconds).
func DefaultTimestampFormat(loc Location) model.TimestampFormat {
	switch loc {
	case LocationHeader:
		return model.TimestampHTTPDate
	case LocationLabel, LocationQuery:
		return model.TimestampDateTime
	default:
		return model.TimestampEpochSeconds
	}
}

// FormatTimestamp renders t per format, matching the wire encodings the
// generated Ruby builder code must reproduce.
func FormatTimestamp(t time.Time, format model.TimestampFormat) string {
	t = t.UTC()
	switch format {
	case model.TimestampEpochSeconds:
		return fmt.Sprintf("%d", t.Unix())
	case model.TimestampHTTPDate:
		return t.Format("Mon, 02 Jan 2006 15:04:05 GMT")
	case model.TimestampDateTime:
		return t.Format("2006-01-02T15:04:05Z")
	default:
		return t.Format("2006-01-02T15:04:05Z")
	}
}

// ParseTimestamp is FormatTimestamp's inverse, used by generated response
// parsers.
func ParseTimestamp(value string, format model.TimestampFormat) (time.Time, error) {
	switch format {
	case model.TimestampEpochSeconds:
		var sec int64
		if _, err := fmt.Sscanf(value, "%d", &sec); err != nil {
			return time.Time{}, fmt.Errorf("restjson: invalid epoch-seconds timestamp %q: %w", value, err)
		}
		return time.Unix(sec, 0).UTC(), nil
	case model.TimestampHTTPDate:
		t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("restjson: invalid http-date timestamp %q: %w", value, err)
		}
		return t.UTC(), nil
	default:
		t, err := time.Parse("2006-01-02T15:04:05Z", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("restjson: invalid date-time timestamp %q: %w", value, err)
		}
		return t.UTC(), nil
	}
}

// JoinHeaderList serializes a list-valued header's elements into a single
// header line, quoting any element containing a comma or double quote and
// escaping embedded quotes/backslashes (spec §4.H: "header list join with
// quote-aware escaping").
func JoinHeaderList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = quoteHeaderValueIfNeeded(v)
	}
	return strings.Join(parts, ", ")
}

func quoteHeaderValueIfNeeded(v string) string {
	if !strings.ContainsAny(v, ",\"") {
		return v
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// SplitHeaderList reverses JoinHeaderList: it splits on unquoted commas and
// unescapes quoted segments (spec §4.I, the parser's symmetric counterpart).
func SplitHeaderList(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	escaped := false
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\' && inQuotes:
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
		i++
	}
	out = append(out, strings.TrimSpace(cur.String()))
	return out
}
