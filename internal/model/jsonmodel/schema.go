// Package jsonmodel is the one concrete, swappable "model loader" this
// generator ships: it decodes a text-serialized JSON model document into the
// read-only model.Model facade the core codegen pipeline consumes. Loading
// and validating the document is explicitly a boundary concern (spec §1:
// "the model loader ... assumed"); this package exists only so the
// generator has something real to run end to end against.
package jsonmodel

// metaSchema is the bundled JSON Schema a model document must satisfy before
// it is translated into shapes. It intentionally only constrains structure
// (are members, traits, and kinds well formed?) — it says nothing about
// Smithy-level semantics such as "an operation's errors must carry the
// error trait"; those are the core's own invariants (spec §3) and are
// checked by the facade/visitors, not here.
const metaSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://smithy-ruby.invalid/model.schema.json",
  "type": "object",
  "required": ["shapes"],
  "properties": {
    "shapes": {
      "type": "array",
      "items": { "$ref": "#/$defs/shape" }
    },
    "services": {
      "type": "array",
      "items": { "$ref": "#/$defs/service" }
    }
  },
  "$defs": {
    "trait": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string" },
        "value": { "type": "string" },
        "http": {
          "type": "object",
          "properties": {
            "method": { "type": "string" },
            "uri": { "type": "string" },
            "code": { "type": "integer" }
          }
        },
        "error": {
          "type": "object",
          "properties": { "kind": { "type": "string" } }
        }
      }
    },
    "member": {
      "type": "object",
      "required": ["name", "target"],
      "properties": {
        "name": { "type": "string" },
        "target": { "type": "string" },
        "traits": { "type": "array", "items": { "$ref": "#/$defs/trait" } }
      }
    },
    "shape": {
      "type": "object",
      "required": ["id", "kind"],
      "properties": {
        "id": { "type": "string" },
        "kind": { "type": "string" },
        "target": { "type": "string" },
        "members": { "type": "array", "items": { "$ref": "#/$defs/member" } },
        "traits": { "type": "array", "items": { "$ref": "#/$defs/trait" } },
        "input": { "type": "string" },
        "output": { "type": "string" },
        "errors": { "type": "array", "items": { "type": "string" } }
      }
    },
    "service": {
      "type": "object",
      "required": ["id", "operations"],
      "properties": {
        "id": { "type": "string" },
        "operations": { "type": "array", "items": { "type": "string" } },
        "traits": { "type": "array", "items": { "$ref": "#/$defs/trait" } }
      }
    }
  }
}`
