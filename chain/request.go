package chain

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is the value threaded through a chain of handlers.
//
// A Request starts valid. Once invalidated it stays invalid: handlers can only record
// further failures, never undo them. A Request is not safe for concurrent use.
type Request struct {
	payload  map[string]any
	valid    bool
	failures []error
}

// NewRequest creates a valid Request carrying a copy of payload.
func NewRequest(payload map[string]any) *Request {
	p := maps.Clone(payload)
	if p == nil {
		p = make(map[string]any)
	}
	return &Request{payload: p, valid: true}
}

// NewRequestFromJSON creates a Request from a JSON object.
// A JSON null yields an empty payload.
func NewRequestFromJSON(data []byte) (*Request, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return NewRequest(payload), nil
}

// NewRequestFromStruct creates a Request from a protobuf Struct.
func NewRequestFromStruct(s *structpb.Struct) *Request {
	return NewRequest(s.AsMap())
}

// Get returns the payload value stored under key.
func (r *Request) Get(key string) (any, bool) {
	v, ok := r.payload[key]
	return v, ok
}

// Has reports whether the payload has an entry for key, whatever its value.
func (r *Request) Has(key string) bool {
	_, ok := r.payload[key]
	return ok
}

// Payload returns a copy of the payload.
func (r *Request) Payload() map[string]any {
	return maps.Clone(r.payload)
}

// Keys returns the payload keys in sorted order.
func (r *Request) Keys() []string {
	keys := maps.Keys(r.payload)
	slices.Sort(keys)
	return keys
}

// Len returns the number of payload entries.
func (r *Request) Len() int {
	return len(r.payload)
}

// Valid reports whether no handler has invalidated the request.
func (r *Request) Valid() bool {
	return r.valid
}

// Invalidate marks the request invalid and records reason.
// A reason already recorded is not recorded twice.
func (r *Request) Invalidate(reason error) {
	r.valid = false
	if reason == nil {
		return
	}
	for _, failure := range r.failures {
		if errors.Is(failure, reason) {
			return
		}
	}
	r.failures = append(r.failures, reason)
}

// Failures returns the recorded failures in the order they happened.
func (r *Request) Failures() []error {
	return slices.Clone(r.failures)
}

// Err returns the joined failures, or nil while the request is valid.
func (r *Request) Err() error {
	if r.valid {
		return nil
	}
	if len(r.failures) == 0 {
		return errors.New("request invalid")
	}
	return errors.Join(r.failures...)
}
