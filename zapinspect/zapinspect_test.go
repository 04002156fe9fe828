package zapinspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bjaus/inspect"
	"github.com/bjaus/inspect/zapinspect"
)

type lazy struct{ calls *int }

func (l lazy) Describe(c *inspect.Context) string {
	*l.calls++
	return c.Render("n", 1)
}

func newObserved(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestField(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)
	logger.Info("state", zapinspect.Field("vars", "a, b", 1, []string{"x"}))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t,
		"a , 1 , b ( Container with 1 elements ) , b[0] , x",
		entries[0].ContextMap()["vars"])
}

func TestLayoutField(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)
	l := inspect.CSV.Layout()
	l.Middle = "="
	logger.Info("state", zapinspect.LayoutField("vars", l, "a", 1))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "a=1", entries[0].ContextMap()["vars"])
}

func TestFieldIsLazy(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.InfoLevel)
	calls := 0
	logger.Debug("skipped", zapinspect.Field("v", "l", lazy{calls: &calls}))
	assert.Zero(t, calls)
	assert.Zero(t, logs.Len())

	logger.Info("kept", zapinspect.Field("v", "l", lazy{calls: &calls}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "l ( Object ) , n , 1", logs.All()[0].ContextMap()["v"])
	assert.Equal(t, 1, calls)
}

func TestObject(t *testing.T) {
	t.Parallel()
	logger, logs := newObserved(zapcore.DebugLevel)
	logger.Info("state", zapinspect.Object("vars", "id, tags", 7, []int{1, 2}, "extra"))

	entries := logs.All()
	require.Len(t, entries, 1)
	got, ok := entries[0].ContextMap()["vars"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"id":   "id , 7",
		"tags": "tags ( Container with 2 elements ) , tags[0] , 1 , tags[1] , 2",
		"[2]":  "[2] , extra",
	}, got)
}
