package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, "json", "info")
	require.NoError(t, err)

	l.WithSize(10).LogSet(context.Background(), 10, true, errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "set failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, float64(10), rec["size"])
	assert.Equal(t, float64(10), rec["position"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_Invalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf, "xml", "info")
	require.Error(t, err)

	_, err = New(&buf, "text", "loud")
	require.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := NewTextLogger(&buf, slog.LevelInfo)
	l.LogGet(context.Background(), 3, true, nil)
	assert.Empty(t, buf.String())

	l.LogVerify(context.Background(), 42, nil)
	assert.Contains(t, buf.String(), "verification completed")
	assert.Contains(t, buf.String(), "checked=42")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	l.LogSet(context.Background(), 1, true, errors.New("ignored"))
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
