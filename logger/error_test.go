package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateError(t *testing.T) { //nolint:err113 // test errors
	t.Parallel()

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("keeps message and chain", func(t *testing.T) {
		t.Parallel()

		baseErr := errors.New("base error")
		annotated := AnnotateError(baseErr, "key", "value")

		assert.Equal(t, "base error", annotated.Error())
		require.ErrorIs(t, annotated, baseErr)
		assert.Equal(t, baseErr, errors.Unwrap(annotated))
	})

	t.Run("captures attributes", func(t *testing.T) {
		t.Parallel()

		annotated := AnnotateError(errors.New("boom"), "count", 3, "key", "a")

		attrs := ErrorAttrs(annotated)
		require.Len(t, attrs, 2)
		assert.Equal(t, "count", attrs[0].Key)
		assert.Equal(t, int64(3), attrs[0].Value.Any()) // slog converts int to int64
		assert.Equal(t, "key", attrs[1].Key)
		assert.Equal(t, "a", attrs[1].Value.Any())
	})
}

func TestErrorAttrs(t *testing.T) { //nolint:err113 // test errors
	t.Parallel()

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ErrorAttrs(errors.New("plain")))
		assert.Empty(t, ErrorAttrs(nil))
	})

	t.Run("nested annotations outermost first", func(t *testing.T) {
		t.Parallel()

		inner := AnnotateError(errors.New("inner"), "inner", 1)
		outer := AnnotateError(fmt.Errorf("wrapped: %w", inner), "outer", 2)

		attrs := ErrorAttrs(outer)
		require.Len(t, attrs, 2)
		assert.Equal(t, "outer", attrs[0].Key)
		assert.Equal(t, "inner", attrs[1].Key)
	})
}

func TestSlogErrorLogger_Handle(t *testing.T) { //nolint:err113 // test errors
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(withErrorAttrs(slog.NewJSONHandler(&buf, nil)))

	log.Info("sort rejected",
		"error", AnnotateError(errors.New("unsupported"), "offending", 2),
		"sorter", "values")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "sort rejected", record["msg"])
	assert.Equal(t, "unsupported", record["error"])
	assert.Equal(t, "values", record["sorter"])
	assert.InDelta(t, 2, record["offending"], 0)
}

func TestWithErrorAttrs_NoDoubleWrap(t *testing.T) {
	t.Parallel()

	h := withErrorAttrs(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, h, withErrorAttrs(h))
}
