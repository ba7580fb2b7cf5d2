package models

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field for an optional attribute.
// Set reports whether the field was supplied at all; a supplied field with a nil Value clears the attribute.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Set returns a supplied field holding v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a supplied field that clears the attribute.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON marks the field as supplied. JSON null clears the value.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// IsZero reports an unsupplied field, so `omitzero` drops it when encoding a patch.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

// MarshalJSON encodes the value or null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// applyTo overwrites dst when the field was supplied.
func (n Nullable[T]) applyTo(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

// assign overwrites dst when v is non-nil.
func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
