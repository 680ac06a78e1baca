package chain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/go-leo/chain/specification"
)

var _ Handler = (*dataValidation)(nil)

type dataValidation struct {
	link
	keys  []string
	check specification.Specification[*Request]
}

// NewDataValidation creates a data validation handler in front of next.
//
// It does nothing, and does not forward, when the request is already invalid.
// Otherwise it invalidates requests missing the data key or any key given with RequireKeys.
func NewDataValidation(next Handler, opts ...Option) Handler {
	return newDataValidation(next, newOption(opts...))
}

func newDataValidation(next Handler, o *option) *dataValidation {
	keys := []string{o.DataKey}
	for _, key := range o.RequiredKeys {
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	specs := make([]specification.Specification[*Request], 0, len(keys))
	for _, key := range keys {
		specs = append(specs, hasKey(key))
	}
	return &dataValidation{
		link:  newLink(DataValidation, next, o),
		keys:  keys,
		check: specification.Conjunction(specs...),
	}
}

func (h *dataValidation) Handle(ctx context.Context, req *Request) {
	if req == nil || !req.Valid() {
		return
	}
	if !h.check.IsSatisfiedBy(ctx, req) {
		missing := h.missing(req)
		req.Invalidate(fmt.Errorf("%w: %s", ErrMissingData, strings.Join(missing, ", ")))
		h.logger.WarnContext(ctx, "data validation failed", "missing", missing)
	}
	h.done(ctx)
	h.forward(ctx, req)
}

func (h *dataValidation) missing(req *Request) []string {
	var missing []string
	for _, key := range h.keys {
		if !req.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}
