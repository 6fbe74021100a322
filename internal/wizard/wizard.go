// Package wizard implements the lesson-notes intake wizard: a five-step
// sequential form that validates each step before advancing, paces the
// progressive reveal of fields within a step, and submits the collected
// values to the generation service.
package wizard

// TotalSteps is the number of wizard steps. Step 5 is the terminal step
// from which submission happens; it stays reachable for resubmission.
const TotalSteps = 5

// Character limits enforced at input acceptance, not by validation.
const (
	// PhoneLength is the full length of a phone number: the country
	// prefix plus nine digits.
	PhoneLength = 13

	// MaxCustomInstructions bounds the free-text instructions field.
	MaxCustomInstructions = 500
)

// ClassEntry is one row of the class roster: a class name and its
// enrollment size. Size stays text until submission time.
type ClassEntry struct {
	Name string
	Size string
}

// FieldValues is the canonical store of everything the user has entered.
// It is created once per session and mutated only through Controller
// operations.
type FieldValues struct {
	Subject    string
	ClassLevel string
	Topic      string

	WeekEnding string
	Duration   string
	Days       string
	Week       string

	Classes []ClassEntry

	PhoneNumber string
	Email       string

	CustomInstructions string
}

// NewFieldValues returns an empty value store with a single blank roster
// entry, so the roster is never empty.
func NewFieldValues() FieldValues {
	return FieldValues{Classes: []ClassEntry{{}}}
}

// Controller owns the wizard session: the current step, the field-value
// store, validation errors from the last failed advance, the in-flight
// submission flag, and the pending notification.
type Controller struct {
	values FieldValues
	step   int

	visible   int
	revealGen int

	errors  ValidationErrors
	loading bool

	notification *Notification
}

// NewController starts a wizard session at step 1.
func NewController() *Controller {
	return &Controller{
		values: NewFieldValues(),
		step:   1,
	}
}

// Step returns the current step, in [1, TotalSteps].
func (c *Controller) Step() int { return c.step }

// Values returns the current field values.
func (c *Controller) Values() FieldValues { return c.values }

// Errors returns the validation errors from the last failed Next or
// submit attempt, or nil when the last attempt was clean.
func (c *Controller) Errors() ValidationErrors { return c.errors }

// Loading reports whether a submission is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Next validates the current step and advances on success. On failure the
// step does not change and the errors are kept for display. Returns true
// if the step advanced.
func (c *Controller) Next() bool {
	errs := Validate(c.step, c.values)
	if len(errs) > 0 {
		c.errors = errs
		return false
	}
	c.errors = nil
	if c.step >= TotalSteps {
		return false
	}
	c.step++
	c.restartReveal()
	return true
}

// Previous moves back one step. It is unguarded and never validates;
// errors from the last failed advance are left as-is. At step 1 it is a
// no-op.
func (c *Controller) Previous() {
	if c.step <= 1 {
		return
	}
	c.step--
	c.restartReveal()
}

// Patch is a partial update to the field values. Nil fields leave the
// current value untouched, giving merge-patch semantics for single-field
// edits.
type Patch struct {
	Subject    *string
	ClassLevel *string
	Topic      *string

	WeekEnding *string
	Duration   *string
	Days       *string
	Week       *string

	PhoneNumber *string
	Email       *string

	CustomInstructions *string

	Class *ClassPatch
}

// ClassPatch updates one roster entry in place.
type ClassPatch struct {
	Index int
	Name  *string
	Size  *string
}

// Set wraps a string for use in a Patch.
func Set(s string) *string { return &s }

// EditField merges a partial update into the field values. It never
// changes the step, the errors, or the loading flag. Phone numbers are
// truncated to PhoneLength and custom instructions to
// MaxCustomInstructions at acceptance time.
func (c *Controller) EditField(p Patch) {
	if p.Subject != nil {
		c.values.Subject = *p.Subject
	}
	if p.ClassLevel != nil {
		c.values.ClassLevel = *p.ClassLevel
	}
	if p.Topic != nil {
		c.values.Topic = *p.Topic
	}
	if p.WeekEnding != nil {
		c.values.WeekEnding = *p.WeekEnding
	}
	if p.Duration != nil {
		c.values.Duration = *p.Duration
	}
	if p.Days != nil {
		c.values.Days = *p.Days
	}
	if p.Week != nil {
		c.values.Week = *p.Week
	}
	if p.PhoneNumber != nil {
		c.values.PhoneNumber = truncate(*p.PhoneNumber, PhoneLength)
	}
	if p.Email != nil {
		c.values.Email = *p.Email
	}
	if p.CustomInstructions != nil {
		c.values.CustomInstructions = truncate(*p.CustomInstructions, MaxCustomInstructions)
	}
	if p.Class != nil {
		c.editClass(*p.Class)
	}
}

func (c *Controller) editClass(p ClassPatch) {
	if p.Index < 0 || p.Index >= len(c.values.Classes) {
		return
	}
	if p.Name != nil {
		c.values.Classes[p.Index].Name = *p.Name
	}
	if p.Size != nil {
		c.values.Classes[p.Index].Size = *p.Size
	}
}

// AddClass appends a blank roster entry.
func (c *Controller) AddClass() {
	c.values.Classes = append(c.values.Classes, ClassEntry{})
}

// RemoveClass removes the roster entry at i. Removal is refused when only
// one entry remains. Returns true if an entry was removed.
func (c *Controller) RemoveClass(i int) bool {
	if len(c.values.Classes) <= 1 {
		return false
	}
	if i < 0 || i >= len(c.values.Classes) {
		return false
	}
	c.values.Classes = append(c.values.Classes[:i], c.values.Classes[i+1:]...)
	return true
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
