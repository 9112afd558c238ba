// Command smithyrb turns a JSON semantic model into a Ruby client library
// speaking a JSON-over-HTTP protocol (spec §6).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goa.design/clue/log"

	"github.com/AndrewFossAWS/smithy-ruby/internal/generator"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
	"github.com/AndrewFossAWS/smithy-ruby/internal/model/jsonmodel"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol/railsjson"
	"github.com/AndrewFossAWS/smithy-ruby/internal/protocol/restjson"
	"github.com/AndrewFossAWS/smithy-ruby/internal/symbols"
	"github.com/AndrewFossAWS/smithy-ruby/internal/writer"
)

// Exit codes (spec §6): 0 success, 2 model/validation error, 3 unsupported
// protocol, 4 I/O error.
const (
	exitOK                  = 0
	exitModelError          = 2
	exitUnsupportedProtocol = 3
	exitIOError             = 4
)

func main() {
	var (
		modelPathF = flag.String("model", "", "path to the JSON semantic model")
		serviceF   = flag.String("service", "", "service shape id to generate a client for")
		outF       = flag.String("out", "", "output directory for the generated gem")
		moduleF    = flag.String("module", "", "Ruby module name for the generated client (overrides --settings)")
		gemF       = flag.String("gem", "", "gem name for the generated client (overrides --settings)")
		protocolF  = flag.String("protocol", restjson.ProtocolID, "protocol trait id to generate against")
		settingsF  = flag.String("settings", "", "path to a YAML settings file")
		dryRunF    = flag.Bool("dry-run", false, "print the files that would be written without writing them")
		debugF     = flag.Bool("debug", false, "enable debug logging")
	)
	cmdArgs := os.Args[1:]
	if len(cmdArgs) > 0 && cmdArgs[0] == "generate" {
		cmdArgs = cmdArgs[1:]
	}
	_ = flag.CommandLine.Parse(cmdArgs)

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if *debugF {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	os.Exit(run(ctx, cliArgs{
		modelPath: *modelPathF,
		service:   *serviceF,
		out:       *outF,
		module:    *moduleF,
		gem:       *gemF,
		protocol:  *protocolF,
		settings:  *settingsF,
		dryRun:    *dryRunF,
	}))
}

type cliArgs struct {
	modelPath, service, out, module, gem, protocol, settings string
	dryRun                                                   bool
}

func run(ctx context.Context, args cliArgs) int {
	settings := generator.Settings{Module: args.module, GemName: args.gem, ServiceID: args.service, OutputRoot: args.out, DryRun: args.dryRun}
	if args.settings != "" {
		fileSettings, err := generator.LoadSettings(args.settings)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "phase", V: "load_settings"})
			return exitModelError
		}
		settings = fileSettings.Merge(settings)
	}

	if args.modelPath == "" || settings.ServiceID == "" || settings.OutputRoot == "" {
		fmt.Fprintln(os.Stderr, "usage: smithyrb generate --model <path> --service <shape-id> --out <dir> [--module <name>] [--gem <name>] [--protocol <id>] [--settings <file>] [--dry-run]")
		return exitModelError
	}

	f, err := os.Open(args.modelPath)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "phase", V: "open_model"})
		return exitModelError
	}
	defer f.Close()

	m, err := jsonmodel.Load(f)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "phase", V: "load_model"})
		return exitModelError
	}

	svc, err := m.ExpectService(parseShapeID(settings.ServiceID))
	if err != nil {
		log.Error(ctx, err, log.KV{K: "phase", V: "resolve_service"})
		return exitModelError
	}

	moduleName := settings.Module
	if moduleName == "" {
		moduleName = "GeneratedClient"
	}
	sym := symbols.NewProvider(moduleName)

	reg := protocol.NewRegistry().
		Register(restjson.New(sym)).
		Register(railsjson.New(sym))
	gen, err := reg.Lookup(args.protocol)
	if err != nil {
		var unsupported *protocol.UnsupportedProtocolError
		if errors.As(err, &unsupported) {
			log.Error(ctx, err, log.KV{K: "phase", V: "select_protocol"})
			return exitUnsupportedProtocol
		}
		log.Error(ctx, err, log.KV{K: "phase", V: "select_protocol"})
		return exitModelError
	}

	sink := generator.NewDiagnosticSink()
	result, err := generator.Generate(ctx, m, svc, gen, sym, sink)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "phase", V: "generate"})
		return exitModelError
	}
	if sink.HasErrors() {
		return exitModelError
	}

	man := result.Manifest
	if len(settings.Overlays) > 0 {
		overlaid, err := generator.ApplyOverlays(man, settings.Overlays)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "phase", V: "apply_overlays"})
			return exitModelError
		}
		man = overlaid
	}

	entries := man.Entries()
	if settings.DryRun {
		for _, entry := range entries {
			fmt.Println(entry.Path)
		}
		return exitOK
	}

	if err := writeEntries(settings.OutputRoot, entries); err != nil {
		log.Error(ctx, err, log.KV{K: "phase", V: "write_files"})
		return exitIOError
	}
	log.Print(ctx, log.KV{K: "run_id", V: sink.RunID()}, log.KV{K: "files", V: fmt.Sprintf("%d", len(entries))})
	return exitOK
}

func writeEntries(root string, entries []writer.Entry) error {
	for _, e := range entries {
		full := filepath.Join(root, e.Path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("smithyrb: creating %s: %w", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(e.Content), 0o644); err != nil {
			return fmt.Errorf("smithyrb: writing %s: %w", full, err)
		}
	}
	return nil
}

// parseShapeID splits "namespace#name"; bare names are accepted verbatim.
func parseShapeID(s string) model.ShapeID {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return model.ShapeID{Namespace: s[:i], Name: s[i+1:]}
	}
	return model.ShapeID{Name: s}
}
