package chain

import (
	"context"
	"fmt"

	"github.com/go-leo/gox/errorx"
	"golang.org/x/exp/slices"

	"github.com/go-leo/chain/decorator"
)

// Pipeline is an assembled chain of handlers with a single entry point.
// The zero Pipeline has no handlers and leaves requests untouched.
type Pipeline struct {
	head Handler
}

// New assembles a pipeline that runs handlers of the given kinds in order.
//
// Handlers are constructed in reverse: the last kind is built first and every
// predecessor wraps the handler built before it.
func New(kinds []Kind, opts ...Option) (*Pipeline, error) {
	if len(kinds) == 0 {
		return nil, ErrNoHandlers
	}
	o := newOption(opts...)
	decorators := make([]decorator.Decorator[Handler], 0, len(kinds))
	for i, kind := range kinds {
		if !kind.known() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
		}
		if slices.Contains(kinds[:i], kind) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
		}
		decorators = append(decorators, wrap(kind, o))
	}
	return &Pipeline{head: decorator.Chain[Handler](nil, decorators...)}, nil
}

// Default assembles the reference pipeline: authentication, data validation, logging.
func Default(opts ...Option) *Pipeline {
	return errorx.Ignore(New(DefaultKinds(), opts...))
}

// Link adopts a chain built by hand, head first.
func Link(head Handler) (*Pipeline, error) {
	if head == nil {
		return nil, ErrHandlerNil
	}
	return &Pipeline{head: head}, nil
}

func wrap(kind Kind, o *option) decorator.Decorator[Handler] {
	return decorator.Func[Handler](func(next Handler) Handler {
		return newHandler(kind, next, o)
	})
}

// Handle runs req through the chain and reports whether it is still valid afterwards.
// The pipeline itself never fails; callers inspect the request for the reasons.
func (p *Pipeline) Handle(ctx context.Context, req *Request) bool {
	if req == nil {
		return false
	}
	if head := p.first(); head != nil {
		head.Handle(ctx, req)
	}
	return req.Valid()
}

func (p *Pipeline) first() Handler {
	if p == nil {
		return nil
	}
	return p.head
}

// Handlers returns the handlers in execution order.
func (p *Pipeline) Handlers() []Handler {
	var handlers []Handler
	for h := p.first(); h != nil; h = h.Next() {
		handlers = append(handlers, h)
	}
	return handlers
}

// Kinds returns the handler kinds in execution order.
func (p *Pipeline) Kinds() []Kind {
	var kinds []Kind
	for h := p.first(); h != nil; h = h.Next() {
		kinds = append(kinds, h.Kind())
	}
	return kinds
}

// Len returns the number of handlers.
func (p *Pipeline) Len() int {
	n := 0
	for h := p.first(); h != nil; h = h.Next() {
		n++
	}
	return n
}
