package telemetry_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gha-validator/internal/adapters/telemetry"
)

func TestNoOpTelemetry(t *testing.T) {
	tel := telemetry.NewNoOp()

	v := tel.Record(context.Background(), "home")
	assert.Equal(t, io.Discard, v.Stdout())
	assert.Equal(t, io.Discard, v.Stderr())

	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	v.Complete(errors.New("boom"))
	assert.NoError(t, tel.WriteReport("/nonexistent/progress.json"))
	assert.NoError(t, tel.Close())
}
