package wizard

// The field-reveal sequencer paces the progressive disclosure of a step's
// inputs: on each scheduler tick one more field becomes visible, until the
// step's field count is reached. The Controller only keeps the counter and
// a generation token; the shell owns the actual timer and tags every tick
// with the token it captured at start, so a timer left over from a previous
// step can never advance the counter after a transition.

// RevealToken identifies one run of the reveal sequence. A new token is
// issued on every step transition, invalidating ticks from earlier runs.
type RevealToken int

// stepFieldCounts is the fixed number of progressively revealed fields per
// step. The class roster on step 3 reveals as a single unit.
var stepFieldCounts = [TotalSteps + 1]int{0, 3, 4, 1, 2, 1}

// StepFieldCount returns the number of revealable fields for a step.
func StepFieldCount(step int) int {
	if step < 1 || step > TotalSteps {
		return 0
	}
	return stepFieldCounts[step]
}

// RevealToken returns the token for the current reveal run. Ticks carrying
// an older token are ignored by AdvanceReveal.
func (c *Controller) RevealToken() RevealToken {
	return RevealToken(c.revealGen)
}

// VisibleFields returns how many of the current step's fields are shown.
func (c *Controller) VisibleFields() int { return c.visible }

// AdvanceReveal applies one scheduler tick. It reveals the next field and
// returns true while the token is current and fields remain hidden;
// otherwise it is a no-op and returns false, telling the shell to stop
// scheduling ticks for this run.
func (c *Controller) AdvanceReveal(tok RevealToken) bool {
	if tok != RevealToken(c.revealGen) {
		return false
	}
	if c.visible >= StepFieldCount(c.step) {
		return false
	}
	c.visible++
	return true
}

// restartReveal resets the visible-field counter and invalidates any
// outstanding ticks. Called on every step transition.
func (c *Controller) restartReveal() {
	c.revealGen++
	c.visible = 0
}
