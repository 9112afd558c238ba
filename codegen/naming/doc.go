// Package naming centralizes identifier sanitization needed outside the
// symbol provider's shape-driven naming (component B): deriving a
// filesystem- and Ruby-require-safe token from operator-supplied strings
// (gem names, module names) that never went through the model at all.
package naming
