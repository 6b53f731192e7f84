package app

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStats(history int) (*Stats, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStats(history)
	s.now = clock.now
	return s, clock
}

func TestStats_SnapshotWrapsInOrder(t *testing.T) {
	s, clock := newTestStats(4)
	s.Frame()
	for i := 1; i <= 6; i++ {
		clock.advance(time.Duration(i) * time.Millisecond)
		s.Frame()
	}

	got := s.Snapshot(10)
	want := []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond, 6 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("snapshot = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}

	if last := s.Snapshot(2); last[0] != 5*time.Millisecond || last[1] != 6*time.Millisecond {
		t.Fatalf("last two = %v", last)
	}
	if s.Last() != 6*time.Millisecond {
		t.Fatalf("Last = %v", s.Last())
	}
	if lo, hi := s.Range(); lo != 3*time.Millisecond || hi != 6*time.Millisecond {
		t.Fatalf("Range = %v, %v", lo, hi)
	}
}

func TestStats_FirstFrameStartsClock(t *testing.T) {
	s, clock := newTestStats(10)
	if s.FPS() != 0 || s.Last() != 0 || s.Uptime() != 0 {
		t.Fatal("empty stats should be zero")
	}
	s.Frame()
	if len(s.Snapshot(10)) != 0 {
		t.Fatal("first frame has no duration")
	}
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		s.Frame()
	}
	if fps := s.FPS(); fps < 59.9 || fps > 60.1 {
		t.Fatalf("FPS = %g", fps)
	}
	if s.Uptime() != 60*(time.Second/60) {
		t.Fatalf("Uptime = %v", s.Uptime())
	}
}

func TestStats_SnapshotNegative(t *testing.T) {
	s, clock := newTestStats(4)
	s.Frame()
	clock.advance(time.Millisecond)
	s.Frame()
	if got := s.Snapshot(-1); len(got) != 0 {
		t.Fatalf("Snapshot(-1) = %v", got)
	}
	if got := s.Snapshot(0); len(got) != 0 {
		t.Fatalf("Snapshot(0) = %v", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "01:15" {
		t.Fatalf("formatDuration = %q", got)
	}
	if got := formatDuration(0); got != "00:00" {
		t.Fatalf("formatDuration = %q", got)
	}
}
