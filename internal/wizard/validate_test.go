package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanValues returns a value set that validates clean on every step.
func cleanValues() FieldValues {
	return FieldValues{
		Subject:     "Math",
		ClassLevel:  "Basic Eight",
		Topic:       "Angles",
		WeekEnding:  "16th May, 2025",
		Duration:    "4 periods",
		Days:        "Mon-Fri",
		Week:        "3",
		Classes:     []ClassEntry{{Name: "Class A", Size: "25"}},
		PhoneNumber: "+233123456789",
	}
}

func TestValidateStep1(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FieldValues)
		wantKey string
		wantMsg string
	}{
		{name: "all present", mutate: func(*FieldValues) {}},
		{
			name:    "missing subject",
			mutate:  func(v *FieldValues) { v.Subject = "" },
			wantKey: "subject",
			wantMsg: "Subject is required",
		},
		{
			name:    "missing class level",
			mutate:  func(v *FieldValues) { v.ClassLevel = "" },
			wantKey: "class_level",
			wantMsg: "Class level is required",
		},
		{
			name:    "missing topic",
			mutate:  func(v *FieldValues) { v.Topic = "" },
			wantKey: "topic",
			wantMsg: "Topic is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cleanValues()
			tt.mutate(&v)
			errs := Validate(1, v)
			if tt.wantKey == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs[tt.wantKey])
		})
	}
}

func TestValidateStep2(t *testing.T) {
	v := cleanValues()
	assert.Empty(t, Validate(2, v))

	v.WeekEnding = ""
	v.Duration = ""
	v.Days = ""
	v.Week = ""
	errs := Validate(2, v)
	assert.Equal(t, "Week ending is required", errs["week_ending"])
	assert.Equal(t, "Duration is required", errs["duration"])
	assert.Equal(t, "Days is required", errs["days"])
	assert.Equal(t, "Week is required", errs["week"])
	assert.Len(t, errs, 4)
}

func TestValidateStep3(t *testing.T) {
	tests := []struct {
		name    string
		classes []ClassEntry
		want    string
	}{
		{
			name:    "complete entries",
			classes: []ClassEntry{{Name: "Class A", Size: "25"}, {Name: "B", Size: "30"}},
		},
		{
			name:    "entry missing size",
			classes: []ClassEntry{{Name: "Class A"}},
			want:    "All classes must have a name and size",
		},
		{
			name:    "entry missing name",
			classes: []ClassEntry{{Size: "25"}},
			want:    "All classes must have a name and size",
		},
		{
			name:    "one bad entry taints the roster",
			classes: []ClassEntry{{Name: "Class A", Size: "25"}, {Name: "B"}},
			want:    "All classes must have a name and size",
		},
		{
			// The empty-roster rule runs last and wins.
			name:    "empty roster",
			classes: nil,
			want:    "At least one class is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cleanValues()
			v.Classes = tt.classes
			errs := Validate(3, v)
			if tt.want == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.want, errs["classes"])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateStep4Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "valid", phone: "+233123456789"},
		{name: "missing", phone: "", want: "Phone number is required"},
		{name: "too few digits", phone: "+23312345", want: "Phone number must be in the format +233 followed by 9 digits"},
		{name: "wrong prefix", phone: "+234123456789", want: "Phone number must be in the format +233 followed by 9 digits"},
		{name: "letters in digits", phone: "+23312345678a", want: "Phone number must be in the format +233 followed by 9 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cleanValues()
			v.PhoneNumber = tt.phone
			errs := Validate(4, v)
			if tt.want == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.want, errs["phone_number"])
		})
	}
}

func TestValidateStep4Email(t *testing.T) {
	v := cleanValues()

	v.Email = ""
	assert.Empty(t, Validate(4, v), "empty email is allowed")

	v.Email = "teacher@example.com"
	assert.Empty(t, Validate(4, v))

	v.Email = "not-an-email"
	errs := Validate(4, v)
	assert.Equal(t, "Invalid email format", errs["email"])
}

func TestValidateStep5AlwaysClean(t *testing.T) {
	assert.Empty(t, Validate(5, FieldValues{}))
}

func TestValidateIdempotent(t *testing.T) {
	v := cleanValues()
	v.Subject = ""
	v.PhoneNumber = "+233"

	for step := 1; step <= TotalSteps; step++ {
		first := Validate(step, v)
		second := Validate(step, v)
		require.Equal(t, first, second, "step %d", step)
	}
}
