package specification

import "context"

var _ Specification[any] = (*base[any])(nil)

type base[T any] struct {
	predicate Func[T]
}

func (spec *base[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.predicate(ctx, t)
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec)
}

func (spec *base[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction[T](append([]Specification[T]{spec}, others...)...)
}

func (spec *base[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction[T](append([]Specification[T]{spec}, others...)...)
}
