package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldValues is a raw form snapshot keyed by field name. Values arrive as
// strings exactly as entered; parsing happens inside the rules.
type FieldValues map[string]string

// Rule validates a single field. When is an optional gate over the sibling
// values; a nil When always applies. Check returns "" when valid, otherwise
// the message to surface for the field.
type Rule struct {
	Field string
	When  func(values FieldValues) bool
	Check func(value string, values FieldValues) string
}

// Validate runs every applicable rule and returns the per-field error map.
// Rules are evaluated in order; the first failing rule wins for a field.
func Validate(rules []Rule, values FieldValues) map[string]string {
	errors := make(map[string]string)
	for _, rule := range rules {
		if _, done := errors[rule.Field]; done {
			continue
		}
		if rule.When != nil && !rule.When(values) {
			continue
		}
		if msg := rule.Check(values[rule.Field], values); msg != "" {
			errors[rule.Field] = msg
		}
	}
	return errors
}

// FirstError returns one error message for banner-style forms, walking the
// rule order so the message matches the first invalid field.
func FirstError(rules []Rule, values FieldValues) string {
	errors := Validate(rules, values)
	if len(errors) == 0 {
		return ""
	}
	for _, rule := range rules {
		if msg, ok := errors[rule.Field]; ok {
			return msg
		}
	}
	return ""
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Required rejects empty or whitespace-only input.
func Required(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// MinLength rejects trimmed input shorter than n. Empty input passes so the
// rule composes with Required.
func MinLength(n int, message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" && len(trimmed) < n {
			return message
		}
		return ""
	}
}

// ValidYear accepts integers in [1900, currentYear+1].
func ValidYear(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if value == "" {
			return ""
		}
		year, err := strconv.Atoi(value)
		if err != nil || year < 1900 || year > time.Now().Year()+1 {
			return message
		}
		return ""
	}
}

// NonNegativeInt accepts empty input or an integer >= 0.
func NonNegativeInt(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if value == "" {
			return ""
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return message
		}
		return ""
	}
}

// PositiveInt accepts empty input or an integer > 0.
func PositiveInt(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if value == "" {
			return ""
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return message
		}
		return ""
	}
}

// ValidNumber accepts empty input or anything parseable as a float.
func ValidNumber(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if value == "" {
			return ""
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return message
		}
		return ""
	}
}

// ValidEmailField rejects non-empty input that fails the email shape check.
func ValidEmailField(message string) func(string, FieldValues) string {
	return func(value string, _ FieldValues) string {
		if value != "" && !IsValidEmail(value) {
			return message
		}
		return ""
	}
}

// MatchesField rejects input that differs from the named sibling field.
func MatchesField(other, message string) func(string, FieldValues) string {
	return func(value string, values FieldValues) string {
		if value != values[other] {
			return message
		}
		return ""
	}
}

// FutureDateTime checks that the date field combined with the named time
// field is strictly after now. Dates are "2006-01-02", times "15:04".
func FutureDateTime(timeField, message string) func(string, FieldValues) string {
	return func(value string, values FieldValues) string {
		if value == "" || values[timeField] == "" {
			return ""
		}
		if !IsFutureDateTime(value, values[timeField], time.Now()) {
			return message
		}
		return ""
	}
}

// IsFutureDateTime reports whether date+clock is strictly after now in local
// time. Unparseable input counts as not-future.
func IsFutureDateTime(date, clock string, now time.Time) bool {
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, now.Location())
	if err != nil {
		return false
	}
	return at.After(now)
}

// ContactNeedsPhone gates the contact phone requirement: phone is mandatory
// only when the chosen method includes a phone call.
func ContactNeedsPhone(values FieldValues) bool {
	method := values["contact_method"]
	return method == "phone" || method == "both"
}

// LoginRules validates the legacy username/password login form.
func LoginRules() []Rule {
	return []Rule{
		{Field: "username", Check: Required("Please enter your username")},
		{Field: "username", Check: MinLength(3, "Username must be at least 3 characters")},
		{Field: "password", Check: Required("Please enter your password")},
		{Field: "password", Check: MinLength(6, "Password must be at least 6 characters")},
	}
}

// RegisterRules validates the sign-up form.
func RegisterRules() []Rule {
	return []Rule{
		{Field: "full_name", Check: Required("Please enter your full name")},
		{Field: "full_name", Check: MinLength(2, "Full name must be at least 2 characters")},
		{Field: "email", Check: Required("Please enter your email")},
		{Field: "email", Check: ValidEmailField("Please enter a valid email address")},
		{Field: "password", Check: Required("Please enter a password")},
		{Field: "password", Check: MinLength(6, "Password must be at least 6 characters")},
		{Field: "confirm_password", Check: Required("Please confirm your password")},
		{Field: "confirm_password", Check: MatchesField("password", "Passwords do not match")},
	}
}

// MotorcycleRules validates the garage add/edit form.
func MotorcycleRules() []Rule {
	return []Rule{
		{Field: "brand", Check: Required("Brand is required")},
		{Field: "model", Check: Required("Model is required")},
		{Field: "year", Check: Required("Year is required")},
		{Field: "year", Check: ValidYear("Please enter a valid year")},
		{Field: "mileage", Check: NonNegativeInt("Mileage cannot be negative")},
		{Field: "engine_size", Check: PositiveInt("Engine size must be positive")},
	}
}

// BookingRules validates the booking request form, including the conditional
// phone requirement.
func BookingRules() []Rule {
	return []Rule{
		{Field: "motorcycle_id", Check: Required("Please select a motorcycle")},
		{Field: "service_type", Check: Required("Please select a service type")},
		{Field: "description", Check: Required("Please provide a description of what you need")},
		{Field: "description", Check: MinLength(10, "Description must be at least 10 characters")},
		{Field: "preferred_date", Check: Required("Please select a preferred date")},
		{Field: "preferred_time", Check: Required("Please select a preferred time")},
		{Field: "preferred_date", Check: FutureDateTime("preferred_time", "Preferred date and time must be in the future")},
		{Field: "contact_phone", When: ContactNeedsPhone, Check: Required("Please provide a contact phone number")},
		{Field: "estimated_budget", Check: ValidNumber("Estimated budget must be a valid number")},
	}
}

// DocumentRules validates the service document metadata form. The file itself
// is gated separately at selection time.
func DocumentRules() []Rule {
	return []Rule{
		{Field: "title", Check: Required("Please enter a title")},
		{Field: "document_type", Check: Required("Please select a document type")},
		{Field: "service_mileage", Check: NonNegativeInt("Service mileage cannot be negative")},
		{Field: "cost", Check: ValidNumber("Cost must be a valid number")},
	}
}
