package middleware

import (
	"context"
	"fmt"

	"github.com/go-leo/chain/chain"
)

// Extractor builds the payload checked by the pipeline from an incoming request.
type Extractor[Req any] func(ctx context.Context, req Req) map[string]any

// RejectedError is returned by Guard when the pipeline invalidated the request.
type RejectedError struct {
	Report chain.Report
	Err    error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("request rejected: %v", e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

type requestKey struct{}

// FromContext returns the chain request a Guard accepted, if any.
func FromContext(ctx context.Context) (*chain.Request, bool) {
	req, ok := ctx.Value(requestKey{}).(*chain.Request)
	return req, ok
}

// Guard runs p in front of the invoker. Requests the pipeline invalidates never reach the
// invoker; the caller gets a *RejectedError instead. Accepted requests are available to the
// invoker through FromContext.
func Guard[Req any, Resp any](p *chain.Pipeline, extract Extractor[Req]) Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error) {
		r := chain.NewRequest(extract(ctx, req))
		if !p.Handle(ctx, r) {
			var resp Resp
			return resp, &RejectedError{Report: r.Report(), Err: r.Err()}
		}
		return invoker(context.WithValue(ctx, requestKey{}, r), req)
	}
}
