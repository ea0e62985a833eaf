package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext_AddsRunID(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, runID := WithRunID(context.Background())
	require.NotEmpty(t, runID)
	assert.Equal(t, runID, GetRunID(ctx))

	ForContext(ctx).WithField("report_id", "r-1").Info("mensagem")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, runID, entry.Data["run_id"])
	assert.Equal(t, "r-1", entry.Data["report_id"])
}

func TestForContext_WithoutRunID(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ForContext(context.Background()).Warn("sem execução")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	_, ok := entry.Data["run_id"]
	assert.False(t, ok)
	assert.Empty(t, GetRunID(context.Background()))
}

func TestForContext_AddsRequestID(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, runID := WithRunID(context.Background())
	ctx, requestID := WithRequestID(ctx)

	ForContext(ctx).Info("requisição")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, runID, entry.Data["run_id"])
	assert.Equal(t, requestID, entry.Data["request_id"])
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	SetupTestLogger()
	defer SetupTestLogger()

	Configure("barulhento", false)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
