// Package visitor provides callback iteration over the container shapes a
// document holds: mappings with string keys, ordered sequences, and structs.
// Common typed containers iterate directly; anything else goes through
// reflection.
package visitor

// Visitor calls the supplied callback for each (key, element) pair.
// Returning (false, nil) stops the visit early; returning an error stops the
// visit and surfaces that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
