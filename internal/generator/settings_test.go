package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewFossAWS/smithy-ruby/internal/generator"
)

func TestDecodeSettingsParsesYAML(t *testing.T) {
	s, err := generator.DecodeSettings(strings.NewReader(`
module: Acme::Things
gem_name: acme-things
service_id: com.acme#Things
output_root: ./out
dry_run: true
`))
	require.NoError(t, err)
	assert.Equal(t, "Acme::Things", s.Module)
	assert.Equal(t, "acme-things", s.GemName)
	assert.True(t, s.DryRun)
}

func TestDecodeSettingsRejectsUnknownField(t *testing.T) {
	_, err := generator.DecodeSettings(strings.NewReader("totally_unknown_field: 1\n"))
	require.Error(t, err)
}

func TestDecodeSettingsParsesOverlays(t *testing.T) {
	s, err := generator.DecodeSettings(strings.NewReader(`
overlays:
  - path: lib/client.rb
    patches:
      - old: "class Client"
        new: "class Client # hand patch"
`))
	require.NoError(t, err)
	require.Len(t, s.Overlays, 1)
	assert.Equal(t, "lib/client.rb", s.Overlays[0].Path)
	require.Len(t, s.Overlays[0].Patches, 1)
	assert.Equal(t, "class Client", s.Overlays[0].Patches[0].Old)
}

func TestMergeOverridesWinOverBase(t *testing.T) {
	base, err := generator.DecodeSettings(strings.NewReader("module: Base\ngem_name: base-gem\n"))
	require.NoError(t, err)
	override, err := generator.DecodeSettings(strings.NewReader("module: Override\n"))
	require.NoError(t, err)

	merged := base.Merge(override)
	assert.Equal(t, "Override", merged.Module)
	assert.Equal(t, "base-gem", merged.GemName)
}
