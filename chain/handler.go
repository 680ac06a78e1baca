package chain

import (
	"context"
	"log/slog"

	"github.com/go-leo/chain/specification"
)

// Handler is one stage of a chain. It inspects and may invalidate the request,
// then decides whether to hand it to the next stage.
//
// The set of handlers is closed: use NewAuthentication, NewDataValidation and NewLogging,
// or assemble a Pipeline from kinds.
type Handler interface {
	// Handle runs the stage on req and forwards to the next stage when appropriate.
	Handle(ctx context.Context, req *Request)

	// Kind returns the variant tag of the handler.
	Kind() Kind

	// Next returns the following stage, or nil if the handler is terminal.
	Next() Handler

	base() *link
}

// link is the part every handler shares: the successor and the diagnostic logger.
// next is set at construction and never changed, so a chain cannot contain a cycle.
type link struct {
	kind   Kind
	next   Handler
	logger *slog.Logger
}

func newLink(kind Kind, next Handler, o *option) link {
	return link{
		kind:   kind,
		next:   next,
		logger: o.Logger.With(slog.String("handler", kind.String())),
	}
}

func (l *link) Kind() Kind { return l.kind }

func (l *link) Next() Handler { return l.next }

func (l *link) base() *link { return l }

func (l *link) forward(ctx context.Context, req *Request) {
	if l.next == nil {
		return
	}
	l.next.Handle(ctx, req)
}

func (l *link) done(ctx context.Context) {
	l.logger.InfoContext(ctx, "handler done")
}

// hasKey is satisfied by requests whose payload has an entry for key.
func hasKey(key string) specification.Specification[*Request] {
	return specification.New[*Request](func(_ context.Context, req *Request) bool {
		return req.Has(key)
	})
}

// newHandler builds the variant tagged kind in front of next.
func newHandler(kind Kind, next Handler, o *option) Handler {
	switch kind {
	case Authentication:
		return newAuthentication(next, o)
	case DataValidation:
		return newDataValidation(next, o)
	case Logging:
		return newLogging(next, o)
	default:
		return nil
	}
}
