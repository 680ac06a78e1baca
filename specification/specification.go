package specification

import "context"

// Specification is a predicate over T that can be combined with other specifications.
// Use New to create a specification from a plain predicate.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification that is satisfied when the current specification
	// and all others are.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification that is satisfied when the current specification
	// or any of the others is.
	Disjunction(others ...Specification[T]) Specification[T]
}

// The Func type is an adapter to allow the use of ordinary functions as predicate.
type Func[T any] func(ctx context.Context, t T) bool

// New creates a Specification from predicate. A nil predicate is never satisfied.
func New[T any](predicate Func[T]) Specification[T] {
	if predicate == nil {
		predicate = func(context.Context, T) bool { return false }
	}
	return &base[T]{predicate: predicate}
}

// And used to create a new specification that is the AND of two other specifications.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return Conjunction[T](left, right)
}

// Or used to create a new specification that is the OR of two other specifications.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return Disjunction[T](left, right)
}

// Not used to create a new specification that is the inverse (NOT) of the given spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New[T](func(ctx context.Context, t T) bool {
		return !spec.IsSatisfiedBy(ctx, t)
	})
}

// Conjunction is satisfied when every spec is satisfied. An empty conjunction is satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New[T](func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when any spec is satisfied. An empty disjunction is not satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New[T](func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, t) {
				return true
			}
		}
		return false
	})
}
