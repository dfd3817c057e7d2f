/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or is empty (Nothing). The zero value of
Maybe is Nothing, which makes Maybe fields safe to use in composite literals.
Clients query a Maybe with a Matcher:

	var tag string
	switch m := sel.Tag.Match(); m {
	case m.Just(&tag):
		…
	case m.Nothing():
		…
	}

*/
package maybe

// Maybe is an option type for values of type T.
type Maybe[T comparable] struct {
	value T
	just  bool
}

// Just wraps a value.
func Just[T comparable](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty option.
func Nothing[T comparable]() Maybe[T] {
	return Maybe[T]{}
}

// Of returns Just(x) if ok, Nothing otherwise.
func Of[T comparable](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// IsNothing is true for empty options.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Match returns a matcher for m, to be used in a switch statement.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the value of m, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Equal is true if both options are Nothing or both hold equal values.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	return m == other
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch over the variants of a Maybe.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
