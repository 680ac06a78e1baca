package decorator

// Decorator wraps an object of type T into another T.
// It can execute something before the wrapped object or after it.
type Decorator[T any] interface {
	// Decorate wraps the underlying obj, adding some functionality.
	Decorate(obj T) T
}

// The Func type is an adapter to allow the use of ordinary functions as Decorator.
// If f is a function with the appropriate signature, Func(f) is a Decorator that calls f.
type Func[T any] func(obj T) T

// Decorate calls f(obj).
func (f Func[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates obj with all decorators.
//
// Decorators are applied from the last to the first, so decorators[0] ends up outermost
// and is the first one to see a call. The last decorator is the first one constructed.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] == nil {
			continue
		}
		obj = decorators[i].Decorate(obj)
	}
	return obj
}

// Funcs converts plain functions into Decorators, preserving order.
func Funcs[T any](fs ...func(obj T) T) []Decorator[T] {
	decorators := make([]Decorator[T], 0, len(fs))
	for _, f := range fs {
		if f == nil {
			continue
		}
		decorators = append(decorators, Func[T](f))
	}
	return decorators
}
