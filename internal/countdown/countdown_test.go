package countdown

import (
	"testing"

	"pictoplan/internal/models"
)

func TestTimerFinishesExactlyOnce(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.remaining = 3

	finished := 0
	for i := 0; i < 10; i++ {
		if tm.Tick() {
			finished++
		}
	}
	if finished != 1 {
		t.Errorf("finished fired %d times, want 1", finished)
	}
	if tm.State() != TimerStopped || tm.Remaining() != 0 {
		t.Errorf("timer not stopped at zero: state=%v remaining=%d", tm.State(), tm.Remaining())
	}
}

func TestTimerPauseResume(t *testing.T) {
	var tm Timer
	tm.Start(1)

	tm.Pause()
	if tm.Tick() {
		t.Error("paused timer finished")
	}
	if tm.Remaining() != 60 {
		t.Errorf("paused timer ticked down to %d", tm.Remaining())
	}

	tm.Resume()
	tm.Tick()
	if tm.Remaining() != 59 {
		t.Errorf("resumed timer at %d, want 59", tm.Remaining())
	}

	tm.Toggle()
	if tm.State() != TimerPaused {
		t.Errorf("Toggle() from running gave %v", tm.State())
	}
}

func TestTimerZones(t *testing.T) {
	var tm Timer
	tm.Start(1)

	if tm.Zone() != ZoneGreen {
		t.Errorf("full timer zone = %v, want green", tm.Zone())
	}

	tm.remaining = 30 // exactly half is no longer green
	if tm.Zone() != ZoneYellow {
		t.Errorf("half timer zone = %v, want yellow", tm.Zone())
	}

	tm.remaining = 12
	if tm.Zone() != ZoneRed {
		t.Errorf("low timer zone = %v, want red", tm.Zone())
	}

	var stopped Timer
	if stopped.Zone() != ZoneRed {
		t.Errorf("zero-total timer zone = %v, want red", stopped.Zone())
	}
}

func TestTimerClock(t *testing.T) {
	var tm Timer
	tm.Start(25)
	if got := tm.Clock(); got != "25:00" {
		t.Errorf("Clock() = %q", got)
	}
	tm.remaining = 65
	if got := tm.Clock(); got != "01:05" {
		t.Errorf("Clock() = %q", got)
	}
}

func buildSchedule(labels ...string) *models.Schedule {
	s := models.NewSchedule("Day")
	for _, label := range labels {
		item := models.NewScheduleItem()
		item.Label = label
		item.Duration = 1
		s.AddItem(item)
	}
	return s
}

func TestControllerWalksSchedule(t *testing.T) {
	c := NewController()
	if c.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", c.State())
	}

	s := buildSchedule("Wake up", "Breakfast", "Play")
	c.Attach(s)

	if c.State() != ShowingCurrent {
		t.Fatalf("state = %v, want ShowingCurrent", c.State())
	}
	if got := c.Current().Label; got != "Wake up" {
		t.Errorf("Current() = %q", got)
	}
	if got := c.Next().Label; got != "Breakfast" {
		t.Errorf("Next() = %q", got)
	}
	if c.Timer().State() != TimerRunning {
		t.Error("timer not started for current activity")
	}

	c.MarkDone()
	if got := c.Current().Label; got != "Breakfast" {
		t.Errorf("after done, Current() = %q", got)
	}

	c.Skip()
	if got := c.Current().Label; got != "Play" {
		t.Errorf("after skip, Current() = %q", got)
	}
	if c.Next() != nil {
		t.Errorf("Next() = %v, want nil at last item", c.Next())
	}

	c.MarkDone()
	if c.State() != Exhausted {
		t.Errorf("state = %v, want Exhausted", c.State())
	}
	if c.Current() != nil {
		t.Error("Current() should be nil when exhausted")
	}
	if c.Timer().State() != TimerStopped {
		t.Error("timer should stop when exhausted")
	}

	// Acting on an exhausted schedule changes nothing.
	c.MarkDone()
	c.Skip()
	if c.State() != Exhausted {
		t.Errorf("state = %v after no-op actions", c.State())
	}
}

func TestControllerTimerExpiryDoesNotAdvance(t *testing.T) {
	s := buildSchedule("Wake up", "Breakfast")
	c := NewController()
	c.Attach(s)

	fired := 0
	for i := 0; i < 70; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expiry fired %d times, want 1", fired)
	}
	if got := c.Current().Label; got != "Wake up" {
		t.Errorf("expiry advanced schedule to %q", got)
	}
}

func TestControllerZeroDurationLeavesTimerStopped(t *testing.T) {
	s := models.NewSchedule("Day")
	item := models.NewScheduleItem()
	item.Label = "Pause"
	item.Duration = 0
	s.AddItem(item)

	c := NewController()
	c.Attach(s)

	if c.Timer().State() != TimerStopped {
		t.Errorf("timer state = %v for zero duration", c.Timer().State())
	}
	if got := c.Current().Label; got != "Pause" {
		t.Errorf("Current() = %q", got)
	}
}

func TestControllerAdvanceToZeroDurationClearsTimer(t *testing.T) {
	s := models.NewSchedule("Day")
	timed := models.NewScheduleItem()
	timed.Label = "Wake up"
	timed.Duration = 1
	s.AddItem(timed)
	untimed := models.NewScheduleItem()
	untimed.Label = "Pause"
	untimed.Duration = 0
	s.AddItem(untimed)

	c := NewController()
	c.Attach(s)
	c.Tick()
	c.Skip()

	if got := c.Current().Label; got != "Pause" {
		t.Fatalf("Current() = %q, want Pause", got)
	}
	tm := c.Timer()
	if tm.State() != TimerStopped || tm.Total() != 0 || tm.Remaining() != 0 {
		t.Errorf("stale countdown after advancing to untimed activity: state=%v total=%d remaining=%d",
			tm.State(), tm.Total(), tm.Remaining())
	}
}

func TestControllerRefreshAfterExternalDone(t *testing.T) {
	s := buildSchedule("Wake up", "Breakfast")
	c := NewController()
	c.Attach(s)

	s.SetDone(s.Items[0].ID, true)
	c.Refresh()

	if got := c.Current().Label; got != "Breakfast" {
		t.Errorf("after external done, Current() = %q", got)
	}
}
