package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "tradechat/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestWithContext_AddsTraceFields(t *testing.T) {
	log, logs := observed()
	tc := appctx.NewTraceContext("trace-1", "req-1")
	tc.ClientIP = "203.0.113.9"
	ctx := appctx.WithTrace(context.Background(), tc)

	log.WithContext(ctx).Infow("chat message", "intent", "help")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "203.0.113.9", fields["client_ip"])
	assert.Equal(t, "help", fields["intent"])
}

func TestFromContext_UsesStoredLogger(t *testing.T) {
	log, logs := observed()
	ctx := WithLogger(context.Background(), log.WithComponent("chat"))

	Warn(ctx, "slow reply")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "chat", logs.All()[0].ContextMap()["component"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestNew_FallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "nonsense", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}
