package generator

import (
	"fmt"

	"github.com/AndrewFossAWS/smithy-ruby/codegen/shared"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// Overlay names literal source patches applied to one emitted file after
// generation, the settings-driven escape hatch for hand corrections that
// would otherwise require forking an emitter (spec §7: "no silent
// fallbacks" — a patch whose pattern is missing is a fatal error, not a
// skipped no-op, unless marked Optional).
type Overlay struct {
	Path    string        `yaml:"path"`
	Patches []shared.Patch `yaml:"patches"`
}

// ApplyOverlays returns a new manifest with every overlay's patches applied
// to its target file's content. man itself is left untouched.
func ApplyOverlays(man *writer.Manifest, overlays []Overlay) (*writer.Manifest, error) {
	content := make(map[string]string)
	for _, e := range man.Entries() {
		content[e.Path] = e.Content
	}

	for _, o := range overlays {
		current, ok := content[o.Path]
		if !ok {
			return nil, fmt.Errorf("generator: overlay targets unknown file %q", o.Path)
		}
		patched, errs := shared.ApplyPatches(current, o.Path, o.Patches)
		if len(errs) > 0 {
			return nil, errs[0]
		}
		content[o.Path] = patched
	}

	out := writer.NewManifest()
	for path, c := range content {
		if err := out.Add(path, c); err != nil {
			return nil, err
		}
	}
	return out, nil
}
