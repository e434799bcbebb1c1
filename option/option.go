// Package option provides Option, the single-level optional wrapper that
// corresponding-generator recognizes when classifying struct fields.
//
// A field of type Option[T] corresponds to a field of type T (or Option[T])
// with the same name in another struct of the same scope:
//
//   - T to Option[T] always sets the target (Set).
//   - Option[T] to T sets the target only when the source is present (Get).
//   - Option[T] to Option[T] copies the source only when it is present (IsSome).
//
// Generated code never writes an absent value into a target.
package option

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Option holds either a value of type T or nothing. The zero value is absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the held value. It panics when the option is absent.
func (o Option[T]) Unwrap() T {
	if !o.some {
		var zero T
		panic(fmt.Sprintf("option: Unwrap called on None[%T]", zero))
	}

	return o.value
}

// UnwrapOr returns the held value, or def when the option is absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// Set makes the option present with v.
func (o *Option[T]) Set(v T) {
	o.value = v
	o.some = true
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON encodes an absent option as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as an absent option.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding option value: %w", err)
	}

	*o = Some(v)

	return nil
}

// MarshalYAML encodes an absent option as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.some {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML decodes a null node as an absent option.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("decoding option value: %w", err)
	}

	*o = Some(v)

	return nil
}
