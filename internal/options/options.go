// Package options provides the generic functional-option plumbing used by
// the configurable types in this module (engine.Formatter, engine.Matcher,
// record.Writer).
package options

// Option configures a value of type T. Constructors accept a variadic list
// of these and apply them in order.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option[T].
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function as an option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps an infallible configuration function as an option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
