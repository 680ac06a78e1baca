package chain

import (
	"bufio"
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type diagnostic struct {
	Level   string `json:"level"`
	Msg     string `json:"msg"`
	Handler string `json:"handler"`
}

// recorder collects the diagnostics emitted by handlers as JSON lines.
type recorder struct {
	buf bytes.Buffer
}

func newRecorder() (*recorder, *slog.Logger) {
	r := &recorder{}
	return r, slog.New(slog.NewJSONHandler(&r.buf, nil))
}

func (r *recorder) diagnostics(t *testing.T) []diagnostic {
	t.Helper()
	var diags []diagnostic
	scanner := bufio.NewScanner(bytes.NewReader(r.buf.Bytes()))
	for scanner.Scan() {
		var d diagnostic
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &d))
		diags = append(diags, d)
	}
	require.NoError(t, scanner.Err())
	return diags
}

func (r *recorder) messages(t *testing.T) []string {
	t.Helper()
	var msgs []string
	for _, d := range r.diagnostics(t) {
		msgs = append(msgs, d.Handler+": "+d.Msg)
	}
	return msgs
}

func (r *recorder) reset() {
	r.buf.Reset()
}
