package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/rasterkernels/internal/config"
)

func TestRun_RequiresDatabase(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	saved := slog.Default()
	t.Cleanup(func() { slog.SetDefault(saved) })
	t.Setenv("DATABASE_DSN", "")

	err := run(context.Background())
	require.ErrorIs(t, err, config.ErrDatabaseNotConfigured)
}

func TestRun_InvalidConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("DATABASE_RETRIES", "0")

	err := run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}
