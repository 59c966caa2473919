package patch

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state partial update value: absent, explicitly null, or set.
// The zero value is absent. JSON decoding only touches fields present in the
// payload, so an omitted key stays absent and `null` becomes cleared.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

func Value[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

func Absent[T any]() Field[T] {
	return Field[T]{}
}

// IsZero lets `omitzero` drop absent fields when re-encoding.
func (f Field[T]) IsZero() bool    { return !f.present }
func (f Field[T]) IsPresent() bool { return f.present }
func (f Field[T]) IsNull() bool    { return f.present && f.null }
func (f Field[T]) HasValue() bool  { return f.present && !f.null }

// Get returns the value and whether one was supplied.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.HasValue()
}

// Apply resolves the field against the current value of a non-nullable attribute.
func (f Field[T]) Apply(current T) T {
	if f.HasValue() {
		return f.value
	}
	return current
}

// ApplyPtr resolves the field against the current value of a nullable attribute.
func (f Field[T]) ApplyPtr(current *T) *T {
	switch {
	case !f.present:
		return current
	case f.null:
		return nil
	default:
		v := f.value
		return &v
	}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
