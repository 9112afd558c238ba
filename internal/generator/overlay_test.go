package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewFossAWS/smithy-ruby/codegen/shared"
	"github.com/AndrewFossAWS/smithy-ruby/internal/generator"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

func manifestWith(t *testing.T, path, content string) *writer.Manifest {
	t.Helper()
	man := writer.NewManifest()
	require.NoError(t, man.Add(path, content))
	return man
}

func TestApplyOverlaysPatchesNamedFile(t *testing.T) {
	man := manifestWith(t, "lib/client.rb", "class Client\nend\n")

	patched, err := generator.ApplyOverlays(man, []generator.Overlay{
		{Path: "lib/client.rb", Patches: []shared.Patch{
			{Old: "class Client", New: "class Client # patched"},
		}},
	})
	require.NoError(t, err)

	var content string
	for _, e := range patched.Entries() {
		if e.Path == "lib/client.rb" {
			content = e.Content
		}
	}
	assert.Contains(t, content, "class Client # patched")
}

func TestApplyOverlaysFailsOnMissingPattern(t *testing.T) {
	man := manifestWith(t, "lib/client.rb", "class Client\nend\n")

	_, err := generator.ApplyOverlays(man, []generator.Overlay{
		{Path: "lib/client.rb", Patches: []shared.Patch{
			{Old: "class NoSuchThing", New: "class Other"},
		}},
	})
	require.Error(t, err)
}

func TestApplyOverlaysFailsOnUnknownFile(t *testing.T) {
	man := manifestWith(t, "lib/client.rb", "class Client\nend\n")

	_, err := generator.ApplyOverlays(man, []generator.Overlay{
		{Path: "lib/nonexistent.rb", Patches: []shared.Patch{{Old: "x", New: "y"}}},
	})
	require.Error(t, err)
}
