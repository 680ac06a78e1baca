package middleware

import (
	"context"
)

// Invoker is the final call a Middleware chain wraps.
type Invoker[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware intercepts a call. It may return early without calling invoker.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error)

// Chain composes middlewares into one. The first middleware is the outermost.
// It returns nil when no middleware is given.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) Middleware[Req, Resp] {
	var mdw Middleware[Req, Resp]
	if len(middlewares) == 0 {
		mdw = nil
	} else if len(middlewares) == 1 {
		mdw = middlewares[0]
	} else {
		mdw = func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error) {
			return middlewares[0](ctx, req, getInvoker(middlewares, 0, invoker))
		}
	}
	return mdw
}

func getInvoker[Req any, Resp any](middlewares []Middleware[Req, Resp], curr int, finalInvoker Invoker[Req, Resp]) Invoker[Req, Resp] {
	if curr == len(middlewares)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return middlewares[curr+1](ctx, req, getInvoker(middlewares, curr+1, finalInvoker))
	}
}

// Then binds mdw to invoker. A nil mdw returns invoker unchanged.
func Then[Req any, Resp any](mdw Middleware[Req, Resp], invoker Invoker[Req, Resp]) Invoker[Req, Resp] {
	if mdw == nil {
		return invoker
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return mdw(ctx, req, invoker)
	}
}

// Invoke is an Invoker that does nothing and returns the zero response.
func Invoke[Req any, Resp any](_ context.Context, _ Req) (Resp, error) {
	var resp Resp
	return resp, nil
}
