package usecase

import "encoding/json"

// Field is a tagged optional value for partial updates: either Unchanged (the
// zero Field) or SetTo(value). It replaces the nullable-pointer convention so
// "absent" and "explicitly set to a zero value" stay distinct at the type
// level — SetTo(0) is a real update, not a missing field.
type Field[T any] struct {
	set   bool
	value T
}

// SetTo returns a Field holding value.
func SetTo[T any](value T) Field[T] {
	return Field[T]{set: true, value: value}
}

// Unchanged returns the zero Field, staged nowhere.
func Unchanged[T any]() Field[T] {
	return Field[T]{}
}

// IsSet reports whether the field carries a value.
func (f Field[T]) IsSet() bool {
	return f.set
}

// Get returns the carried value and whether it was set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Ptr returns a pointer to the carried value, or nil when unchanged. Handy for
// staging repository-level field sets.
func (f Field[T]) Ptr() *T {
	if !f.set {
		return nil
	}
	v := f.value

	return &v
}

// UnmarshalJSON marks the field as set whenever its key is present with a
// non-null value. A JSON null is treated as absent: the API offers no
// "clear this field" semantics for listing attributes.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field[T]{}

		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*f = Field[T]{set: true, value: value}

	return nil
}

// MarshalJSON renders the carried value, or null when unchanged.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}

	return json.Marshal(f.value)
}
