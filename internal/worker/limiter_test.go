package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiter_DisabledForZeroRate(t *testing.T) {
	if l := NewLimiter(0, 5); l != nil {
		t.Error("expected nil limiter for zero rate")
	}
	if l := NewLimiter(-1, 5); l != nil {
		t.Error("expected nil limiter for negative rate")
	}
}

func TestLimiter_NilIsUnlimited(t *testing.T) {
	var l *Limiter

	if !l.Allow() {
		t.Error("nil limiter should always allow")
	}
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("nil limiter Wait: %v", err)
	}
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow() || !l.Allow() {
		t.Fatal("the burst should allow the first two documents")
	}
	if l.Allow() {
		t.Error("third document within the same instant should be limited")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if !l.Allow() {
		t.Fatal("first token should be available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected Wait to fail when the context expires first")
	}
}
