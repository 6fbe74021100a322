package wizard

import (
	"errors"

	"github.com/johnamet/lng-1/internal/ingress"
)

// Submission lifecycle. The shell drives it in two phases around the
// blocking network call: BeginSubmit gates and prepares, the call runs off
// the update loop, and FinishSubmit records the outcome. The loading flag
// set by BeginSubmit acts as the mutual-exclusion lock: a second submit
// while one is in flight is ignored, never queued.

const (
	successMessage = "Lesson notes generated. You will receive a delivery confirmation via your contact channel."
	failureMessage = "Failed to generate lesson notes, please try again"
)

// BeginSubmit re-validates the current step and, when clean and no
// submission is in flight, marks the session loading and returns the
// transformed submission. The bool reports whether the call should
// proceed; on false no request must be issued.
func (c *Controller) BeginSubmit() (ingress.Submission, bool) {
	errs := Validate(c.step, c.values)
	if len(errs) > 0 {
		c.errors = errs
		return ingress.Submission{}, false
	}
	if c.loading {
		return ingress.Submission{}, false
	}
	c.errors = nil
	c.loading = true
	return BuildSubmission(c.values), true
}

// FinishSubmit classifies the outcome of the outbound call and replaces
// the pending notification. The loading flag is released on every path.
func (c *Controller) FinishSubmit(res *ingress.Result, err error) {
	c.loading = false

	if err != nil {
		msg := failureMessage
		var apiErr *ingress.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.notification = &Notification{Kind: KindError, Message: msg}
		return
	}

	n := &Notification{Kind: KindSuccess, Message: successMessage}
	if res != nil {
		n.FileURL = res.FileURL
	}
	c.notification = n
}
