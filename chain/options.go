package chain

import (
	"io"
	"log/slog"
)

const (
	// DefaultTokenKey is the payload key checked by the authentication handler.
	DefaultTokenKey = "token"
	// DefaultDataKey is the payload key checked by the data validation handler.
	DefaultDataKey = "data"
)

type option struct {
	Logger       *slog.Logger
	TokenKey     string
	DataKey      string
	RequiredKeys []string
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.TokenKey == "" {
		o.TokenKey = DefaultTokenKey
	}
	if o.DataKey == "" {
		o.DataKey = DefaultDataKey
	}
	return o
}

type Option func(*option)

// Logger sets the logger handlers emit diagnostics to. Diagnostics are discarded by default.
func Logger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// TokenKey sets the payload key the authentication handler requires.
func TokenKey(key string) Option {
	return func(o *option) {
		o.TokenKey = key
	}
}

// DataKey sets the payload key the data validation handler requires.
func DataKey(key string) Option {
	return func(o *option) {
		o.DataKey = key
	}
}

// RequireKeys adds payload keys the data validation handler requires besides the data key.
func RequireKeys(keys ...string) Option {
	return func(o *option) {
		o.RequiredKeys = append(o.RequiredKeys, keys...)
	}
}
