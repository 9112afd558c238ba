package generator

import (
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

type configKeyPair struct {
	Name    string
	Default string
}

// GenerateConfig appends the service's Config class to w: one
// keyword-initialized attribute per config key contributed by the
// transport and by the protocol generator (spec §4.G, §4.L).
func GenerateConfig(gen protocol.Generator, w *writer.Writer) error {
	keys := configKeyPairs(gen)

	w.OpenBlock("class Config", "end", nil)
	w.OpenBlock("def initialize(**opts)", "end", nil)
	for _, k := range keys {
		if k.Default != "" {
			w.Write("@$name = opts.fetch(:$name, $default)", map[string]string{"name": k.Name, "default": k.Default})
		} else {
			w.Write("@$name = opts[:$name]", map[string]string{"name": k.Name})
		}
	}
	w.CloseBlock(nil)
	w.Newline()
	for _, k := range keys {
		w.Write("attr_reader :$name", map[string]string{"name": k.Name})
	}
	w.CloseBlock(nil)
	w.Newline()
	return nil
}

func configKeyPairs(gen protocol.Generator) []configKeyPair {
	var out []configKeyPair
	for _, k := range gen.ApplicationTransport().ConfigKeys {
		out = append(out, configKeyPair{Name: k.Name, Default: k.Default})
	}
	for _, k := range gen.ClientConfig() {
		out = append(out, configKeyPair{Name: k.Name, Default: k.Default})
	}
	return out
}
