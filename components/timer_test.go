package components

import "testing"

func TestTimer(t *testing.T) {
	t.Run("fires_once_at_deadline", func(t *testing.T) {
		var timer Timer
		timer.Start(1, 2)

		if timer.Expired(2.99) {
			t.Fatal("expired before the deadline")
		}
		if got := timer.Remaining(2.5); got != 0.5 {
			t.Fatalf("Remaining = %v, want 0.5", got)
		}
		if !timer.Expired(3) {
			t.Fatal("did not expire at the deadline")
		}
		if timer.Expired(4) {
			t.Fatal("expired twice")
		}
		if timer.Armed {
			t.Fatal("still armed after expiry")
		}
		if timer.Remaining(3.5) != 0 {
			t.Fatal("expired timer has time remaining")
		}
	})

	t.Run("restart_supersedes_previous_deadline", func(t *testing.T) {
		var timer Timer
		timer.Start(0, 2)
		first := timer.Generation
		timer.Start(1.5, 2)

		if timer.Generation == first {
			t.Fatal("restart did not bump the generation")
		}
		if timer.Expired(2) {
			t.Fatal("expired at the first deadline after restart")
		}
		if !timer.Expired(3.5) {
			t.Fatal("did not expire at the new deadline")
		}
	})

	t.Run("zero_value_never_fires", func(t *testing.T) {
		var timer Timer
		if timer.Expired(100) {
			t.Fatal("unarmed timer expired")
		}
	})

	t.Run("accumulated_steps_reach_deadline", func(t *testing.T) {
		var timer Timer
		timer.Start(0, 2)
		clock := ClockData{Delta: 0.02}
		steps := 0
		for !timer.Expired(clock.Now) {
			clock.Advance()
			steps++
			if steps > 1000 {
				t.Fatal("never expired")
			}
		}
		if steps != 100 {
			t.Fatalf("expired after %d steps, want 100", steps)
		}
	})
}
