package chain

import (
	"context"

	"github.com/go-leo/chain/specification"
)

var _ Handler = (*authentication)(nil)

type authentication struct {
	link
	key   string
	check specification.Specification[*Request]
}

// NewAuthentication creates an authentication handler in front of next.
//
// It invalidates requests whose payload lacks the token key. Unlike the other handlers
// it always runs and always forwards, even when the request is already invalid.
func NewAuthentication(next Handler, opts ...Option) Handler {
	return newAuthentication(next, newOption(opts...))
}

func newAuthentication(next Handler, o *option) *authentication {
	return &authentication{
		link:  newLink(Authentication, next, o),
		key:   o.TokenKey,
		check: hasKey(o.TokenKey),
	}
}

func (h *authentication) Handle(ctx context.Context, req *Request) {
	if req == nil {
		return
	}
	if !h.check.IsSatisfiedBy(ctx, req) {
		req.Invalidate(ErrMissingToken)
		h.logger.WarnContext(ctx, "authentication failed", "key", h.key)
	}
	h.done(ctx)
	h.forward(ctx, req)
}
