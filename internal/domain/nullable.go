package domain

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field that distinguishes an absent value, an explicit null and a value.
// The zero value is absent.
type Nullable[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// Set returns a present, non-null field.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Valid: true, Value: v}
}

// Null returns a present field holding an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// UnmarshalJSON is only invoked when the key is present in the document.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		var zero T
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns nil for absent or null, otherwise a pointer to a copy of Value.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
