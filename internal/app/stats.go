package app

import (
	"fmt"
	"time"
)

// Stats keeps the last N frame durations for the diagnostic overlay.
type Stats struct {
	buffer    []time.Duration
	nextIndex int
	count     int

	now   func() time.Time
	start time.Time
	last  time.Time
}

func NewStats(history int) *Stats {
	if history < 1 {
		history = 1
	}
	return &Stats{
		buffer: make([]time.Duration, history),
		now:    time.Now,
	}
}

// Frame records the time since the previous call. The first call only
// starts the clock.
func (s *Stats) Frame() {
	t := s.now()
	if s.start.IsZero() {
		s.start, s.last = t, t
		return
	}
	s.buffer[s.nextIndex] = t.Sub(s.last)
	s.last = t
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.count < len(s.buffer) {
		s.count++
	}
}

// Snapshot returns up to the last n frame durations, most recent last.
func (s *Stats) Snapshot(n int) []time.Duration {
	n = max(min(n, s.count), 0)
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := s.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(s.buffer) - 1
		}
		out = append(out, s.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Last is the most recent frame duration.
func (s *Stats) Last() time.Duration {
	if s.count == 0 {
		return 0
	}
	idx := s.nextIndex - 1
	if idx < 0 {
		idx = len(s.buffer) - 1
	}
	return s.buffer[idx]
}

// Range returns the shortest and longest recorded frame.
func (s *Stats) Range() (lo, hi time.Duration) {
	for i, d := range s.Snapshot(s.count) {
		if i == 0 || d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// FPS is the average rate over the recorded frames.
func (s *Stats) FPS() float64 {
	var total time.Duration
	frames := s.Snapshot(s.count)
	for _, d := range frames {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(frames)) / total.Seconds()
}

func (s *Stats) Uptime() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return s.last.Sub(s.start)
}

func (s *Stats) String() string {
	lo, hi := s.Range()
	return fmt.Sprintf("%.1f MS (%.1f-%.1f)  %.0f FPS  %s",
		ms(s.Last()), ms(lo), ms(hi), s.FPS(), formatDuration(s.Uptime()))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
