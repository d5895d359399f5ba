package logger_test

import (
	"candystore/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development default level", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production default level", environment: logger.ProductionEnvironment, debug: false},
		{name: "development at warn", environment: logger.DevelopmentEnvironment, level: "warn", debug: false},
		{name: "production at debug", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "unknown level", environment: logger.DevelopmentEnvironment, level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("email", "ann@candy.shop"))
	logger.Info(ctx, "checked out", zap.Int("items", 3))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "checked out", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "ann@candy.shop", fields["email"])
	require.EqualValues(t, 3, fields["items"])
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")
	logger.Sync(ctx)

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
