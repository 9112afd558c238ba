package jsonmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

const schemaURL = "https://smithy-ruby.invalid/model.schema.json"

// docTrait, docMember, docShape and docService mirror the JSON document
// shape validated by metaSchema.
type (
	docTrait struct {
		Name  string `json:"name"`
		Value string `json:"value,omitempty"`
		HTTP  *struct {
			Method string `json:"method"`
			URI    string `json:"uri"`
			Code   int    `json:"code"`
		} `json:"http,omitempty"`
		Error *struct {
			Kind string `json:"kind"`
		} `json:"error,omitempty"`
	}

	docMember struct {
		Name   string     `json:"name"`
		Target string     `json:"target"`
		Traits []docTrait `json:"traits,omitempty"`
	}

	docShape struct {
		ID      string      `json:"id"`
		Kind    string      `json:"kind"`
		Target  string      `json:"target,omitempty"`
		Members []docMember `json:"members,omitempty"`
		Traits  []docTrait  `json:"traits,omitempty"`
		Input   string      `json:"input,omitempty"`
		Output  string      `json:"output,omitempty"`
		Errors  []string    `json:"errors,omitempty"`
	}

	docService struct {
		ID         string     `json:"id"`
		Operations []string   `json:"operations"`
		Traits     []docTrait `json:"traits,omitempty"`
	}

	document struct {
		Shapes   []docShape   `json:"shapes"`
		Services []docService `json:"services"`
	}
)

// Load decodes, schema-validates, and translates a JSON model document into
// a *model.Model. It returns a *model.IntegrityError-free error for
// malformed JSON or schema violations; the returned model itself is the one
// component A's facade queries for the remainder of the run.
func Load(r io.Reader) (*model.Model, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(metaSchema)); err != nil {
		return nil, fmt.Errorf("register model meta-schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile model meta-schema: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse model document: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("model document failed schema validation: %w", err)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode model document: %w", err)
	}

	b := model.NewBuilder()
	for _, ds := range doc.Shapes {
		shape, err := translateShape(ds)
		if err != nil {
			return nil, err
		}
		b.AddShape(shape)
	}
	for _, svc := range doc.Services {
		ops := make([]model.ShapeID, 0, len(svc.Operations))
		for _, o := range svc.Operations {
			ops = append(ops, parseShapeID(o))
		}
		b.AddService(&model.Service{
			ID:         parseShapeID(svc.ID),
			Operations: ops,
			Traits:     translateTraits(svc.Traits),
		})
	}
	return b.Build(), nil
}

func translateShape(ds docShape) (*model.Shape, error) {
	shape := &model.Shape{
		ID:     parseShapeID(ds.ID),
		Kind:   model.Kind(ds.Kind),
		Traits: translateTraits(ds.Traits),
	}
	if ds.Target != "" {
		shape.Target = parseShapeID(ds.Target)
	}
	for _, m := range ds.Members {
		shape.Members = append(shape.Members, model.Member{
			Name:   m.Name,
			Target: parseShapeID(m.Target),
			Traits: translateTraits(m.Traits),
		})
	}
	if ds.Input != "" {
		id := parseShapeID(ds.Input)
		shape.Input = &id
	}
	if ds.Output != "" {
		id := parseShapeID(ds.Output)
		shape.Output = &id
	}
	for _, e := range ds.Errors {
		shape.Errors = append(shape.Errors, parseShapeID(e))
	}
	return shape, nil
}

func translateTraits(traits []docTrait) []model.Trait {
	out := make([]model.Trait, 0, len(traits))
	for _, t := range traits {
		mt := model.Trait{Name: model.TraitKind(t.Name), Value: t.Value}
		if t.HTTP != nil {
			mt.HTTP = &model.HTTPTrait{Method: t.HTTP.Method, URI: t.HTTP.URI, Code: t.HTTP.Code}
		}
		if t.Error != nil {
			mt.Error = &model.ErrorTrait{Kind: t.Error.Kind}
		}
		out = append(out, mt)
	}
	return out
}

// parseShapeID splits "namespace#name"; IDs without a namespace are
// accepted verbatim, matching how the examples in spec §8 write bare names.
func parseShapeID(s string) model.ShapeID {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return model.ShapeID{Namespace: s[:i], Name: s[i+1:]}
	}
	return model.ShapeID{Name: s}
}
