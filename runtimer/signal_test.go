package runtimer

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestCallbacksRunOnSignal(t *testing.T) {
	sh := New(time.Second, syscall.SIGUSR1)

	var order []string
	sh.RegisterCallback(func(ctx context.Context, s os.Signal) {
		order = append(order, "first")

		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected the callback context to carry a deadline")
		}

		if s != syscall.SIGUSR1 {
			t.Errorf("Expected SIGUSR1, got %v", s)
		}
	})
	sh.RegisterCallback(func(ctx context.Context, s os.Signal) {
		order = append(order, "second")
	})

	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess failed: %v", err)
	}

	if err := p.Signal(syscall.SIGUSR1); err != nil {
		t.Fatalf("Sending the signal failed: %v", err)
	}

	sh.Wait()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected callbacks in registration order, got %v", order)
	}
}
