package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApp_Run_ContextCancellation(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() (context.Context, context.CancelFunc)
		expectedError error
	}{
		{
			name: "即座にキャンセルされたコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			expectedError: context.Canceled,
		},
		{
			name: "タイムアウトコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
				time.Sleep(10 * time.Millisecond)
				return ctx, cancel
			},
			expectedError: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.setupContext()
			defer cancel()

			h := newHarness(t, baseConfig(), defaultFixture().build(t))

			err := h.app.Run(ctx)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, 0, h.loader.CallCount)
			assert.Empty(t, h.fs.Files)
		})
	}
}

func TestApp_Extract_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHarness(t, baseConfig(), defaultFixture().build(t))

	_, err := h.app.Extract(ctx, defaultFixture().build(t))
	assert.ErrorIs(t, err, context.Canceled)
}
