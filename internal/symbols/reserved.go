package symbols

// rubyReserved are identifiers reserved by the target language (Ruby); a
// member name colliding with one of these is suffixed with a stable
// disambiguator rather than silently shadowing a keyword (spec §4.B).
var rubyReserved = map[string]bool{
	"begin": true, "end": true, "def": true, "class": true, "module": true,
	"if": true, "unless": true, "then": true, "else": true, "elsif": true,
	"while": true, "until": true, "do": true, "for": true, "in": true,
	"return": true, "yield": true, "self": true, "nil": true, "true": true,
	"false": true, "and": true, "or": true, "not": true, "case": true,
	"when": true, "rescue": true, "ensure": true, "retry": true, "next": true,
	"break": true, "redo": true, "super": true, "require": true,
	"require_relative": true, "attr_accessor": true, "attr_reader": true,
	"attr_writer": true, "raise": true, "lambda": true, "proc": true,
	"defined?": true, "alias": true, "undef": true, "BEGIN": true, "END": true,
}

// IsReserved reports whether name collides with a target-language keyword.
func IsReserved(name string) bool { return rubyReserved[name] }
