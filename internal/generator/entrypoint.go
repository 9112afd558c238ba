package generator

import (
	"path"

	"github.com/AndrewFossAWS/smithy-ruby/codegen/naming"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// entrypointRequires is the fixed, dependency-respecting require order for
// the package entrypoint (spec §6 output layout: "<package>/lib/<package>.rb
// -- module entrypoint"). Types and errors have no intra-package
// dependents; client.rb and config.rb close over everything emitted before
// them.
var entrypointRequires = []string{
	"types", "params", "validators", "stubs", "builders", "parsers", "errors", "config", "client",
}

// GenerateEntrypoint emits the package's top-level require file, named
// after gemName (Generate passes the symbol provider's namespace). The name
// is sanitized into a Ruby-require-safe token rather than trusted verbatim,
// since it never passed through the model's own symbol provider; a name
// that sanitizes to nothing yields "entrypoint".
func GenerateEntrypoint(gemName string) *writer.Writer {
	token := naming.SanitizeToken(gemName, "entrypoint")
	w := writer.New(path.Join("lib", token+".rb"))
	for _, rel := range entrypointRequires {
		w.Write("require_relative '$name'", map[string]string{"name": rel})
	}
	return w
}
