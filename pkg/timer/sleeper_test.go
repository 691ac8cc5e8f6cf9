package timer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestContextSleeper(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		cancel   bool
		wantErr  error
	}{
		{name: "short sleep", duration: 10 * time.Millisecond},
		{name: "zero duration", duration: 0},
		{name: "cancelled", duration: time.Hour, cancel: true, wantErr: context.Canceled},
		{name: "cancelled zero duration", duration: 0, cancel: true, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			start := time.Now()
			err := ContextSleeper{}.Sleep(ctx, tt.duration)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Sleep() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && time.Since(start) < tt.duration {
				t.Errorf("Sleep() returned after %v, want at least %v", time.Since(start), tt.duration)
			}
			if tt.cancel && time.Since(start) > time.Second {
				t.Error("cancelled Sleep() should return promptly")
			}
		})
	}
}
