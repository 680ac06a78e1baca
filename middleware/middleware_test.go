package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/chain/chain"
)

func tag(name string, calls *[]string) Middleware[string, string] {
	return func(ctx context.Context, req string, invoker Invoker[string, string]) (string, error) {
		*calls = append(*calls, name)
		resp, err := invoker(ctx, req+name)
		return resp + name, err
	}
}

func echo(_ context.Context, req string) (string, error) {
	return req + "|", nil
}

func TestChain(t *testing.T) {
	var calls []string
	mdw := Chain(tag("a", &calls), tag("b", &calls), tag("c", &calls))
	resp, err := Then(mdw, echo)(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "abc|cba", resp)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestChain_Degenerate(t *testing.T) {
	assert.Nil(t, Chain[string, string]())

	var calls []string
	resp, err := Then(Chain(tag("a", &calls)), echo)(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "a|a", resp)

	resp, err = Then[string, string](nil, echo)(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "x|", resp)

	resp, err = Invoke[string, string](context.Background(), "x")
	assert.NoError(t, err)
	assert.Empty(t, resp)
}

func payloadOf(_ context.Context, req map[string]any) map[string]any {
	return req
}

func TestGuard(t *testing.T) {
	guard := Guard[map[string]any, string](chain.Default(), payloadOf)

	var seen *chain.Request
	invoker := func(ctx context.Context, req map[string]any) (string, error) {
		seen, _ = FromContext(ctx)
		return "ok", nil
	}

	resp, err := guard(context.Background(), map[string]any{"token": "abc123", "data": "some_data"}, invoker)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	require.NotNil(t, seen)
	assert.True(t, seen.Valid())

	seen = nil
	resp, err = guard(context.Background(), map[string]any{"token": "abc123"}, invoker)
	assert.Empty(t, resp)
	assert.Nil(t, seen)
	assert.ErrorIs(t, err, chain.ErrMissingData)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.False(t, rejected.Report.Valid)
	assert.Equal(t, []string{"token"}, rejected.Report.Keys)
	assert.Contains(t, rejected.Error(), "request rejected")
}

func TestGuard_InChain(t *testing.T) {
	var calls []string
	mdw := Chain(
		Guard[map[string]any, string](chain.Default(), payloadOf),
		func(ctx context.Context, req map[string]any, invoker Invoker[map[string]any, string]) (string, error) {
			calls = append(calls, "inner")
			return invoker(ctx, req)
		},
	)
	invoke := Then(mdw, Invoke[map[string]any, string])

	_, err := invoke(context.Background(), map[string]any{"data": "d"})
	assert.ErrorIs(t, err, chain.ErrMissingToken)
	assert.Empty(t, calls)

	_, err = invoke(context.Background(), map[string]any{"token": "t", "data": "d"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"inner"}, calls)
}

func TestFromContext_Empty(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
