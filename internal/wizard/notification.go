package wizard

// Kind classifies a notification as a success or error outcome.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is the single pending user-facing outcome of a submission.
// FileURL is set on success when the response carried a file reference.
type Notification struct {
	Kind    Kind
	Message string
	FileURL string
}

// Notification returns the pending notification, or nil if there is none.
// At most one exists at a time; a new outcome replaces the previous one.
func (c *Controller) Notification() *Notification {
	return c.notification
}

// DismissNotification clears the pending notification.
func (c *Controller) DismissNotification() {
	c.notification = nil
}
