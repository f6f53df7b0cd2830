package components

import (
	"testing"
	"time"
)

func TestRepeatingTimerWrapsAndKeepsRemainder(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)

	for i := 0; i < 3; i++ {
		timer.Tick(300 * time.Millisecond)
		if timer.JustFinished() {
			t.Fatalf("Expected no completion after %d ticks", i+1)
		}
	}

	timer.Tick(300 * time.Millisecond)
	if !timer.JustFinished() {
		t.Fatal("Expected completion at 1.2s")
	}
	if timer.Elapsed != 200*time.Millisecond {
		t.Errorf("Expected remainder 200ms, got %v", timer.Elapsed)
	}

	timer.Tick(100 * time.Millisecond)
	if timer.JustFinished() {
		t.Error("Expected JustFinished to clear on the next tick")
	}
}

func TestRepeatingTimerLargeDelta(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)
	timer.Tick(2500 * time.Millisecond)

	if got := timer.timesElapsed; got != 2 {
		t.Errorf("Expected 2 completions, got %d", got)
	}
	if timer.Elapsed != 500*time.Millisecond {
		t.Errorf("Expected remainder 500ms, got %v", timer.Elapsed)
	}
}

func TestRepeatingTimerExactBoundary(t *testing.T) {
	timer := NewTimer(time.Second, TimerRepeating)
	timer.Tick(time.Second)
	if !timer.JustFinished() {
		t.Error("Expected completion exactly at the period")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Expected elapsed to wrap to 0, got %v", timer.Elapsed)
	}
}

func TestOnceTimer(t *testing.T) {
	timer := NewTimer(500*time.Millisecond, TimerOnce)

	timer.Tick(490 * time.Millisecond)
	if timer.Finished() || timer.JustFinished() {
		t.Fatal("Expected timer to still be running at 490ms")
	}
	if timer.Remaining() != 10*time.Millisecond {
		t.Errorf("Expected 10ms remaining, got %v", timer.Remaining())
	}

	timer.Tick(10 * time.Millisecond)
	if !timer.Finished() || !timer.JustFinished() {
		t.Fatal("Expected timer to finish at 500ms")
	}

	timer.Tick(time.Second)
	if !timer.Finished() {
		t.Error("Expected a one-shot timer to stay finished")
	}
	if timer.JustFinished() {
		t.Error("Expected a one-shot timer to report JustFinished only once")
	}
	if timer.Elapsed != 500*time.Millisecond {
		t.Errorf("Expected elapsed to clamp at 500ms, got %v", timer.Elapsed)
	}
}

func TestTimerIgnoresNegativeDelta(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)
	timer.Tick(200 * time.Millisecond)
	timer.Tick(-time.Second)
	if timer.Elapsed != 200*time.Millisecond {
		t.Errorf("Expected negative delta to be ignored, got %v", timer.Elapsed)
	}
}

func TestTimerResetAndFraction(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)
	timer.Tick(250 * time.Millisecond)
	if got := timer.Fraction(); got != 0.25 {
		t.Errorf("Expected fraction 0.25, got %v", got)
	}

	timer.Tick(time.Second)
	timer.Reset()
	if timer.Finished() || timer.Elapsed != 0 {
		t.Errorf("Expected reset timer to be at zero and running, got %+v", timer)
	}
}
