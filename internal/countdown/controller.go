package countdown

import "pictoplan/internal/models"

type ControllerState int

const (
	// Idle means no schedule is attached.
	Idle ControllerState = iota
	// ShowingCurrent means a pending activity is on display.
	ShowingCurrent
	// Exhausted means the attached schedule has no pending items left.
	Exhausted
)

// Controller drives the "now" view: it tracks the current activity of a
// schedule and runs the countdown for it. Done and Skip both complete the
// current activity and advance; a finished timer leaves the activity in
// place until the user acts.
type Controller struct {
	schedule  *models.Schedule
	timer     Timer
	currentID string
	state     ControllerState
}

func NewController() *Controller {
	return &Controller{}
}

// Attach points the controller at a schedule and shows its current activity.
func (c *Controller) Attach(s *models.Schedule) {
	c.schedule = s
	c.currentID = ""
	c.Refresh()
}

// Refresh re-reads the schedule's current activity. When it changed, the
// countdown restarts with the new item's duration; a zero duration leaves
// the timer stopped.
func (c *Controller) Refresh() {
	if c.schedule == nil {
		c.state = Idle
		c.timer.Stop()
		return
	}

	item := c.schedule.CurrentActivity()
	if item == nil {
		c.state = Exhausted
		c.currentID = ""
		c.timer.Stop()
		return
	}

	c.state = ShowingCurrent
	if item.ID != c.currentID {
		c.currentID = item.ID
		if item.Duration > 0 {
			c.timer.Start(item.Duration)
		} else {
			// A leftover countdown from the previous item must not show
			// for an untimed activity.
			c.timer.Reset()
		}
	}
}

func (c *Controller) State() ControllerState { return c.state }

// Timer exposes the countdown for display and pause control.
func (c *Controller) Timer() *Timer { return &c.timer }

// Current returns the activity on display, or nil.
func (c *Controller) Current() *models.ScheduleItem {
	if c.schedule == nil || c.currentID == "" {
		return nil
	}
	return c.schedule.Item(c.currentID)
}

// Next returns the upcoming pending activity for the preview strip, or nil.
func (c *Controller) Next() *models.ScheduleItem {
	if c.schedule == nil || c.currentID == "" {
		return nil
	}
	next, err := c.schedule.NextActivity(c.currentID)
	if err != nil {
		return nil
	}
	return next
}

// MarkDone completes the current activity and advances to the next pending
// one. Calling it with nothing on display is a no-op.
func (c *Controller) MarkDone() {
	c.complete()
}

// Skip completes the current activity without waiting out the timer.
func (c *Controller) Skip() {
	c.timer.Stop()
	c.complete()
}

func (c *Controller) complete() {
	if c.schedule == nil || c.currentID == "" {
		return
	}
	c.schedule.SetDone(c.currentID, true)
	c.currentID = ""
	c.Refresh()
}

// Tick advances the countdown by one second and reports whether it just
// ran out. The schedule position does not move on expiry.
func (c *Controller) Tick() bool {
	return c.timer.Tick()
}
