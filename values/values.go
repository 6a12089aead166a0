package values

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/exprad/expr"
)

// ErrDuplicateKey indicates Insert was called with a key already present;
// use Update to change an existing binding.
var ErrDuplicateKey = errors.New("values: key already present")

// Dict is a map-backed variable store. It implements expr.Values.
type Dict struct {
	m map[expr.Key]any
}

// NewDict creates an empty store.
// Complexity: O(1).
func NewDict() *Dict {
	return &Dict{m: make(map[expr.Key]any)}
}

// Insert binds v to key. Returns ErrDuplicateKey if key is already bound.
// Complexity: O(1).
func (d *Dict) Insert(key expr.Key, v any) error {
	if _, ok := d.m[key]; ok {
		return fmt.Errorf("values: insert %d: %w", key, ErrDuplicateKey)
	}
	d.m[key] = v

	return nil
}

// Update replaces the binding of an existing key. Returns
// expr.ErrKeyNotFound if key is absent.
// Complexity: O(1).
func (d *Dict) Update(key expr.Key, v any) error {
	if _, ok := d.m[key]; !ok {
		return fmt.Errorf("values: update %d: %w", key, expr.ErrKeyNotFound)
	}
	d.m[key] = v

	return nil
}

// Delete removes the binding of key. Returns expr.ErrKeyNotFound if key
// is absent.
// Complexity: O(1).
func (d *Dict) Delete(key expr.Key) error {
	if _, ok := d.m[key]; !ok {
		return fmt.Errorf("values: delete %d: %w", key, expr.ErrKeyNotFound)
	}
	delete(d.m, key)

	return nil
}

// At returns the value bound to key and whether the key is present.
// This is the untyped expr.Values contract consumed by the evaluator.
// Complexity: O(1).
func (d *Dict) At(key expr.Key) (any, bool) {
	v, ok := d.m[key]

	return v, ok
}

// Len returns the number of bindings.
// Complexity: O(1).
func (d *Dict) Len() int { return len(d.m) }

// Keys returns all bound keys in ascending order.
// Complexity: O(n log n).
func (d *Dict) Keys() []expr.Key {
	out := make([]expr.Key, 0, len(d.m))
	for k := range d.m {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// At is the typed lookup: fetch the value bound to key as a T, failing
// with expr.ErrKeyNotFound when absent and expr.ErrTypeMismatch when the
// stored value is not a T.
// Complexity: O(1).
func At[T any](d *Dict, key expr.Key) (T, error) {
	var zero T

	raw, ok := d.m[key]
	if !ok {
		return zero, fmt.Errorf("values: at %d: %w", key, expr.ErrKeyNotFound)
	}
	t, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("values: at %d holds %T: %w", key, raw, expr.ErrTypeMismatch)
	}

	return t, nil
}
