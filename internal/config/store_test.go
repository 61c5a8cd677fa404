package config

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore_Memory(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = BackendMemory

	store, done, err := OpenStore(context.Background(), cfg, prometheus.NewRegistry(), zap.NewNop())
	require.NoError(t, err)
	defer done()

	rows, err := store.GetAll(context.Background(), "Products")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "excel"

	_, _, err := OpenStore(context.Background(), cfg, prometheus.NewRegistry(), zap.NewNop())
	assert.Error(t, err)
}
