package chain

import "context"

var _ Handler = (*logging)(nil)

type logging struct {
	link
}

// NewLogging creates a logging handler in front of next.
// It records valid requests and never invalidates them. Only payload keys are logged.
func NewLogging(next Handler, opts ...Option) Handler {
	return newLogging(next, newOption(opts...))
}

func newLogging(next Handler, o *option) *logging {
	return &logging{link: newLink(Logging, next, o)}
}

func (h *logging) Handle(ctx context.Context, req *Request) {
	if req == nil || !req.Valid() {
		return
	}
	h.logger.InfoContext(ctx, "logging request", "keys", req.Keys())
	h.done(ctx)
	h.forward(ctx, req)
}
