package multicast_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/multicast/pkg/multicast"
)

func TestBackground_ReturnsImmediately(t *testing.T) {
	release := make(chan struct{})
	done := make(chan error, 1)

	blocked := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		<-release
		return nil
	})

	bg := multicast.Background(multicast.List[string]{blocked}, func(err error) {
		done <- err
	})
	require.Len(t, bg, 1)

	start := time.Now()
	require.NoError(t, multicast.Raise(context.Background(), bg, nil, "x"))
	assert.Less(t, time.Since(start), 100*time.Millisecond, "raise must not wait for the background work")

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("continuation never ran")
	}
}

func TestBackground_ContinuationSeesFault(t *testing.T) {
	errBoom := errors.New("boom")
	done := make(chan error, 1)

	failing := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		return errBoom
	})

	bg := multicast.Background(multicast.List[string]{failing}, func(err error) {
		done <- err
	})

	require.NoError(t, multicast.Raise(context.Background(), bg, nil, "x"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errBoom)
	case <-time.After(time.Second):
		t.Fatal("continuation never ran")
	}
}

func TestBackground_DefaultContinuationDiscards(t *testing.T) {
	ran := make(chan struct{})
	failing := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		close(ran)
		return errors.New("boom")
	})

	bg := multicast.Background(multicast.List[string]{failing}, nil)
	require.NoError(t, multicast.Raise(context.Background(), bg, nil, "x"))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("background raise never ran")
	}
}

func TestBackground_NilList(t *testing.T) {
	assert.Nil(t, multicast.Background[string](nil, nil))
}

func TestLogContinuation(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logged := make(chan struct{})
	cont := multicast.LogContinuation(logger)

	failing := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		return errors.New("boom")
	})
	bg := multicast.Background(multicast.List[string]{failing}, func(err error) {
		cont(err)
		close(logged)
	})

	require.NoError(t, multicast.Raise(context.Background(), bg, nil, "x"))

	select {
	case <-logged:
		assert.Contains(t, buf.String(), "background raise failed")
	case <-time.After(time.Second):
		t.Fatal("continuation never ran")
	}
}

func TestRaiseAsync_Success(t *testing.T) {
	var ran bool
	cb := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		ran = true
		return nil
	})

	f := multicast.RaiseAsync(context.Background(), multicast.List[string]{cb}, nil, "x")
	require.NoError(t, f.Wait(context.Background()))
	assert.True(t, ran)
	assert.True(t, f.Resolved())
}

func TestRaiseAsync_FaultOwnedByCaller(t *testing.T) {
	errBoom := errors.New("boom")
	failing := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		return errBoom
	})

	f := multicast.RaiseAsync(context.Background(), multicast.List[string]{failing}, nil, "x")

	err := f.Wait(context.Background())
	assert.ErrorIs(t, err, errBoom, "the handle surfaces the fault; nothing is suppressed")
	assert.ErrorIs(t, f.Err(), errBoom)
}

func TestRaiseAsync_NilListResolvesSuccessfully(t *testing.T) {
	f := multicast.RaiseAsync[string](context.Background(), nil, nil, "x")
	assert.NoError(t, f.Wait(context.Background()))
}

func TestRaiseAsync_RecoversPanic(t *testing.T) {
	panicking := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		panic("kaboom")
	})

	f := multicast.RaiseAsync(context.Background(), multicast.List[string]{panicking}, nil, "x")

	var panicErr *multicast.CallbackPanicError
	require.ErrorAs(t, f.Wait(context.Background()), &panicErr)
}

func TestRaiseAsync_StopsAtFirstFault(t *testing.T) {
	errBoom := errors.New("boom")
	var calls int
	failing := multicast.Callback[string](func(_ context.Context, _ any, _ string) error {
		calls++
		return errBoom
	})

	list := multicast.List[string]{failing, failing}
	f := multicast.RaiseAsync(context.Background(), list, nil, "x")

	require.ErrorIs(t, f.Wait(context.Background()), errBoom)
	assert.Equal(t, 1, calls, "the base form schedules the synchronous raise semantics")
}
