package sheet

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsResults(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	store := Instrument(NewMemoryStore("Users"), reg)

	require.NoError(t, store.Append(ctx, "Users", []string{"id"}))
	_, err := store.GetAll(ctx, "Users")
	require.NoError(t, err)
	_, err = store.GetAll(ctx, "Missing")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(store.ops.WithLabelValues("append", "Users", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(store.ops.WithLabelValues("get_all", "Users", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(store.ops.WithLabelValues("get_all", "Missing", "error")))
}
