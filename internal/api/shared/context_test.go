package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/api/shared"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := shared.SetTraceID(context.Background())
		traceID := shared.GetTraceID(ctx)

		require.NotEmpty(t, traceID)
		assert.Len(t, traceID, shared.TraceIDLength*2, "trace ID is hex-encoded")
	})

	t.Run("unique per context", func(t *testing.T) {
		t.Parallel()

		first := shared.GetTraceID(shared.SetTraceID(context.Background()))
		second := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})

	t.Run("absent trace ID", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, shared.GetTraceID(context.Background()))
	})
}
