package middleware

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/go-leo/chain/chain"
)

type grpcOption struct {
	Extractor Extractor[any]
	Code      func(err error) codes.Code
}

func newGRPCOption(opts ...GRPCOption) *grpcOption {
	o := &grpcOption{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Extractor == nil {
		o.Extractor = GRPCPayload
	}
	if o.Code == nil {
		o.Code = Code
	}
	return o
}

type GRPCOption func(*grpcOption)

// WithExtractor replaces GRPCPayload as the way payloads are built from unary calls.
func WithExtractor(extract Extractor[any]) GRPCOption {
	return func(o *grpcOption) {
		o.Extractor = extract
	}
}

// WithCode replaces Code as the mapping from pipeline failures to status codes.
func WithCode(code func(err error) codes.Code) GRPCOption {
	return func(o *grpcOption) {
		o.Code = code
	}
}

// UnaryServerInterceptor guards unary gRPC calls with p.
//
// By default the payload is built by GRPCPayload and failures are mapped by Code:
// a missing token is codes.Unauthenticated and missing data codes.InvalidArgument.
func UnaryServerInterceptor(p *chain.Pipeline, opts ...GRPCOption) grpc.UnaryServerInterceptor {
	o := newGRPCOption(opts...)
	guard := Guard[any, any](p, o.Extractor)
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := guard(ctx, req, Invoker[any, any](handler))
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return nil, status.Error(o.Code(rejected.Err), rejected.Error())
		}
		return resp, err
	}
}

// GRPCPayload extracts the payload of a unary call from a *structpb.Struct request body,
// if the call has one, and from the incoming metadata. Body fields win over metadata
// with the same key.
func GRPCPayload(ctx context.Context, req any) map[string]any {
	var payload map[string]any
	if s, ok := req.(*structpb.Struct); ok {
		payload = s.AsMap()
	} else {
		payload = make(map[string]any)
	}
	md, _ := metadata.FromIncomingContext(ctx)
	for key, values := range md {
		if len(values) == 0 {
			continue
		}
		if _, ok := payload[key]; ok {
			continue
		}
		payload[key] = values[0]
	}
	return payload
}

// Code maps pipeline failures to a gRPC status code.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, chain.ErrMissingToken):
		return codes.Unauthenticated
	case errors.Is(err, chain.ErrMissingData):
		return codes.InvalidArgument
	default:
		return codes.PermissionDenied
	}
}
