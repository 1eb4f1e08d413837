// Package redact provides string types for credentials that must never show up
// in logs, diagnostics or serialized configuration dumps.
//
// A Secret behaves like a plain string for decoding (envconfig, YAML) but every
// printing or encoding path renders a fixed placeholder. Use Value to get at the
// real content at the single place that needs it, e.g. an HTTP header.
package redact

import "encoding/json"

// Placeholder is rendered instead of a secret's value.
const Placeholder = "[REDACTED]"

// Secret is a sensitive string value.
type Secret string

// Value returns the raw secret.
func (s Secret) Value() string {
	return string(s)
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s == ""
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return Placeholder
}

// GoString implements fmt.GoStringer so %#v does not leak either.
func (s Secret) GoString() string {
	return `"` + Placeholder + `"`
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(Placeholder)
}

// MarshalYAML implements yaml.Marshaler.
func (s Secret) MarshalYAML() (interface{}, error) {
	return Placeholder, nil
}
