package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/go-leo/chain/chain"
)

// CLI runs one request through a handler chain and reports the outcome.
type CLI struct {
	// Token and Data are pointers so that an empty value still puts the key in the payload.
	Token    *string      `kong:"help='Authentication token to put in the payload.'"`
	Data     *string      `kong:"help='Data to put in the payload.'"`
	Payload  string       `kong:"help='Request payload as a JSON object. --token and --data override its entries.'"`
	Stages   []chain.Kind `kong:"default='authentication,data-validation,logging',help='Handlers in execution order.'"`
	TokenKey string       `kong:"default='token',help='Payload key the authentication handler requires.'"`
	DataKey  string       `kong:"default='data',help='Payload key the data validation handler requires.'"`
	Require  []string     `kong:"help='Additional payload keys the data validation handler requires.'"`
	JSON     bool         `kong:"help='Print the outcome as JSON.'"`

	Log struct {
		Level slog.Level `enum:"DEBUG,INFO,WARN,ERROR" default:"INFO" help:"Set the diagnostics level."`
	} `embed:"" prefix:"log-"`
}

func newParser(c *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("chain"),
		kong.Description("Run a request through an ordered chain of handlers."),
		kong.UsageOnError(),
		kong.DefaultEnvars("CHAIN"),
	}, options...)
	parser, err := kong.New(c, options...)
	if err != nil {
		return nil, fmt.Errorf("failed creating the Kong parser: %w", err)
	}
	return parser, nil
}

func newLogger(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    !color,
		TimeFormat: "2006-01-02 15:04:05.000",
	}))
}

func (c *CLI) request() (*chain.Request, error) {
	payload := make(map[string]any)
	if c.Payload != "" {
		req, err := chain.NewRequestFromJSON([]byte(c.Payload))
		if err != nil {
			return nil, err
		}
		payload = req.Payload()
	}
	if c.Token != nil {
		payload[c.TokenKey] = *c.Token
	}
	if c.Data != nil {
		payload[c.DataKey] = *c.Data
	}
	return chain.NewRequest(payload), nil
}

// run handles the request described by the flags. It reports false when the request
// was invalidated; err is only set for bad input.
func (c *CLI) run(ctx context.Context, stdout io.Writer, logger *slog.Logger) (bool, error) {
	p, err := chain.New(c.Stages,
		chain.Logger(logger),
		chain.TokenKey(c.TokenKey),
		chain.DataKey(c.DataKey),
		chain.RequireKeys(c.Require...),
	)
	if err != nil {
		return false, err
	}
	req, err := c.request()
	if err != nil {
		return false, err
	}

	ok := p.Handle(ctx, req)
	if c.JSON {
		return ok, req.Report().Encode(stdout)
	}
	if ok {
		fmt.Fprintln(stdout, "Request processing successful")
	} else {
		fmt.Fprintf(stdout, "Request processing failed: %v\n", req.Err())
	}
	return ok, nil
}
