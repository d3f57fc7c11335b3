// Package ptr provides helper functions for creating pointers to values,
// used to populate optional fields where nil means "not supplied".
package ptr

// To returns a pointer to the given value.
func To[T any](v T) *T { return &v }

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Deref returns the value p points to, or def if p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
