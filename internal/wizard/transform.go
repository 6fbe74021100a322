package wizard

import (
	"strconv"
	"strings"

	"github.com/johnamet/lng-1/internal/ingress"
)

// BuildSubmission maps the collected field values onto the service wire
// schema. It is pure and deliberately lenient: roster entries missing a
// name or size are dropped (step-3 validation already rejects them, this
// is a fallback), and a non-numeric size becomes 0 rather than failing
// the submission.
func BuildSubmission(v FieldValues) ingress.Submission {
	clsSize := make(map[string]int, len(v.Classes))
	for _, entry := range v.Classes {
		if entry.Name == "" || entry.Size == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(entry.Size))
		if err != nil {
			n = 0
		}
		clsSize[classKey(entry.Name)] = n
	}

	return ingress.Submission{
		Notes: ingress.NotesPayload{
			Subject:            v.Subject,
			ClassLevel:         v.ClassLevel,
			Topic:              v.Topic,
			WeekEnding:         v.WeekEnding,
			ClsSize:            clsSize,
			Duration:           v.Duration,
			Days:               v.Days,
			Week:               v.Week,
			CustomInstructions: v.CustomInstructions,
		},
		Contact: ingress.Contact{
			PhoneNumber: v.PhoneNumber,
			Email:       v.Email,
		},
	}
}

// classKey derives the cls_size key from a roster name by stripping a
// literal leading "Class" token and surrounding whitespace: "Class A"
// becomes "A". A name without the prefix is used as-is.
func classKey(name string) string {
	key := strings.TrimSpace(name)
	key = strings.TrimPrefix(key, "Class")
	return strings.TrimSpace(key)
}
