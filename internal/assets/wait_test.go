package assets

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countdown struct {
	checks  int
	readyAt int
}

func (c *countdown) Ready() bool {
	c.checks++
	return c.checks >= c.readyAt
}

func TestWaitReady(t *testing.T) {
	tests := []struct {
		name        string
		readyAt     int
		maxAttempts int
		wantErr     error
		wantChecks  int
	}{
		{"immediately", 1, 50, nil, 1},
		{"third poll", 3, 50, nil, 3},
		{"exhausted", 10, 4, ErrNotReady, 4},
		{"unbounded", 20, 0, nil, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &countdown{readyAt: tt.readyAt}
			err := WaitReady(context.Background(), r, time.Millisecond, tt.maxAttempts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if r.checks != tt.wantChecks {
				t.Errorf("checks = %d, want %d", r.checks, tt.wantChecks)
			}
		})
	}
}

func TestWaitReadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &countdown{readyAt: 1000}
	err := WaitReady(ctx, r, time.Hour, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
