package blobs

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGameOverIsLogged(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	s := NewSession(800, 600, WithLogger(zap.New(obs)))
	s.circles = []Circle{
		{X: 300, Y: 300, Tier: 0},
		{X: 380, Y: 300, Tier: 0},
	}

	s.Tick()

	entries := logs.FilterMessage("game over").All()
	if len(entries) != 1 {
		t.Fatalf("expected one game over entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["circles"] != int64(2) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if n := logs.FilterMessage("new game").Len(); n != 1 {
		t.Fatalf("expected one new game entry, got %d", n)
	}
}
