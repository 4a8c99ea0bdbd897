package model

import "encoding/json"

// Field is a request body value that remembers whether its key was sent at all,
// so an explicit null can be told apart from a missing key.
type Field[T any] struct {
	Set   bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	return json.Unmarshal(b, &f.Value)
}

// Of returns a Field that is set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f Field[T]) apply(cols map[string]any, name string) {
	if f.Set {
		cols[name] = f.Value
	}
}

// DirtySet is the set of column names changed by a write.
type DirtySet map[string]struct{}

func (d DirtySet) Add(col string) {
	d[col] = struct{}{}
}

func (d DirtySet) Has(col string) bool {
	_, ok := d[col]
	return ok
}
