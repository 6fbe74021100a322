package wizard

import "regexp"

// ValidationErrors maps a field name to a human-readable message. A field
// absent from the map is valid; an empty map means the step is clean.
type ValidationErrors map[string]string

// PhonePrefix is the fixed country-code prefix every phone number must
// carry. The remaining nine characters must be digits.
const PhonePrefix = "+233"

var (
	phoneRe = regexp.MustCompile(`^\+233\d{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the fields owned by the given step and returns the
// errors found. It is pure: the same inputs always produce the same
// result, and nothing is mutated.
func Validate(step int, v FieldValues) ValidationErrors {
	errs := ValidationErrors{}

	switch step {
	case 1:
		requireField(errs, "subject", v.Subject, "Subject")
		requireField(errs, "class_level", v.ClassLevel, "Class level")
		requireField(errs, "topic", v.Topic, "Topic")

	case 2:
		requireField(errs, "week_ending", v.WeekEnding, "Week ending")
		requireField(errs, "duration", v.Duration, "Duration")
		requireField(errs, "days", v.Days, "Days")
		requireField(errs, "week", v.Week, "Week")

	case 3:
		// Order matters: the empty-roster check runs last and wins.
		for _, entry := range v.Classes {
			if entry.Name == "" || entry.Size == "" {
				errs["classes"] = "All classes must have a name and size"
				break
			}
		}
		if len(v.Classes) == 0 {
			errs["classes"] = "At least one class is required"
		}

	case 4:
		if v.PhoneNumber == "" {
			errs["phone_number"] = "Phone number is required"
		} else if !phoneRe.MatchString(v.PhoneNumber) {
			errs["phone_number"] = "Phone number must be in the format " + PhonePrefix + " followed by 9 digits"
		}
		if v.Email != "" && !emailRe.MatchString(v.Email) {
			errs["email"] = "Invalid email format"
		}

	case 5:
		// Custom instructions are optional; the length cap is enforced
		// at input acceptance.
	}

	return errs
}

func requireField(errs ValidationErrors, key, value, label string) {
	if value == "" {
		errs[key] = label + " is required"
	}
}
