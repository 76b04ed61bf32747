// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"testing"
	"time"
)

func TestLoopSchedulerDefersNestedRequests(t *testing.T) {
	base := time.Unix(100, 0)
	s := NewLoopScheduler(base)

	var got []time.Duration
	s.RequestFrame(func(ts time.Duration) {
		got = append(got, ts)
		s.RequestFrame(func(ts time.Duration) { got = append(got, ts) })
	})

	if n := s.Pump(base.Add(10 * time.Millisecond)); n != 1 {
		t.Fatalf("first pump ran %d callbacks, want 1", n)
	}
	if s.Pending() != 1 {
		t.Fatalf("nested request should wait for next pump")
	}
	s.Pump(base.Add(26 * time.Millisecond))

	want := []time.Duration{10 * time.Millisecond, 26 * time.Millisecond}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("timestamps = %v, want %v", got, want)
	}
}

func TestTickerSchedulerSharesFrameTimestamp(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)
	defer s.Close()

	ch := make(chan time.Duration, 2)
	s.RequestFrame(func(ts time.Duration) { ch <- ts })
	s.RequestFrame(func(ts time.Duration) { ch <- ts })

	var stamps []time.Duration
	for i := 0; i < 2; i++ {
		select {
		case ts := <-ch:
			stamps = append(stamps, ts)
		case <-time.After(2 * time.Second):
			t.Fatalf("frame %d not delivered", i)
		}
	}
	if stamps[0] != stamps[1] {
		t.Fatalf("callbacks in one frame got %v and %v", stamps[0], stamps[1])
	}
	if stamps[0] <= 0 {
		t.Fatalf("timestamp should be positive, got %v", stamps[0])
	}
}

func TestTickerSchedulerCloseDropsFrames(t *testing.T) {
	s := NewTickerScheduler(20 * time.Millisecond)
	fired := make(chan struct{}, 1)
	s.RequestFrame(func(time.Duration) { fired <- struct{}{} })
	s.Close()
	s.RequestFrame(func(time.Duration) { fired <- struct{}{} })

	select {
	case <-fired:
		t.Fatalf("closed scheduler delivered a frame")
	case <-time.After(100 * time.Millisecond):
	}
}
