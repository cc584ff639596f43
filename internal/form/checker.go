package form

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire format for calendar dates (contracts, reports).
const DateLayout = "2006-01-02"

// DefaultMessage is the form-level message shown when any field fails.
const DefaultMessage = "Please complete all required fields correctly."

var emailRe = regexp.MustCompile(`^[A-Za-z0-9.!#$%&'*+/=?^_{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"` // required, too_long, out_of_range, invalid
	Message string `json:"message"`
}

// Errors is a rejected submission: a form-level message plus the fields that
// failed. Fields may be empty when the failure is not tied to one input, e.g.
// a relation that no longer resolves.
type Errors struct {
	Message string
	Fields  []FieldError
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return e.Message + " (" + strings.Join(names, ", ") + ")"
}

// Has reports whether field failed validation.
func (e *Errors) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Fail builds a form-level rejection with no field errors.
func Fail(message string) *Errors {
	return &Errors{Message: message}
}

// Checker collects field errors for one submission. The zero value is ready.
type Checker struct {
	fields []FieldError
}

func (c *Checker) Add(field, code, message string) {
	c.fields = append(c.fields, FieldError{Field: field, Code: code, Message: message})
}

func (c *Checker) Valid() bool { return len(c.fields) == 0 }

// Err returns nil when every check passed.
func (c *Checker) Err(message string) error {
	if c.Valid() {
		return nil
	}
	if message == "" {
		message = DefaultMessage
	}
	out := make([]FieldError, len(c.fields))
	copy(out, c.fields)
	return &Errors{Message: message, Fields: out}
}

// Text requires a non-blank value of at most max runes.
func (c *Checker) Text(field, v string, max int) {
	v = strings.TrimSpace(v)
	if v == "" {
		c.Add(field, "required", field+" is required")
		return
	}
	c.MaxLen(field, v, max)
}

// MaxLen checks an optional value; blank passes.
func (c *Checker) MaxLen(field, v string, max int) {
	if max > 0 && utf8.RuneCountInString(strings.TrimSpace(v)) > max {
		c.Add(field, "too_long", fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

func (c *Checker) IntRange(field string, v *int, min, max int) {
	if v == nil {
		c.Add(field, "required", field+" is required")
		return
	}
	if *v < min || *v > max {
		c.Add(field, "out_of_range", fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
}

func (c *Checker) FloatRange(field string, v *float64, min, max float64) {
	if v == nil {
		c.Add(field, "required", field+" is required")
		return
	}
	if *v < min || *v > max {
		c.Add(field, "out_of_range", fmt.Sprintf("%s must be between %g and %g", field, min, max))
	}
}

// RequiredID rejects a missing or non-positive reference.
func (c *Checker) RequiredID(field string, id *int64) {
	if id == nil || *id <= 0 {
		c.Add(field, "required", field+" is required")
	}
}

// NonEmptyIDs requires at least one selected reference. noun names one
// item in the message, e.g. "editor".
func (c *Checker) NonEmptyIDs(field, noun string, ids []int64) {
	if len(ids) == 0 {
		c.Add(field, "required", "select at least one "+noun)
	}
}

func (c *Checker) Email(field, v string, max int) {
	v = strings.TrimSpace(v)
	if v == "" {
		c.Add(field, "required", field+" is required")
		return
	}
	if !emailRe.MatchString(v) {
		c.Add(field, "invalid", field+" must be a valid email address")
		return
	}
	c.MaxLen(field, v, max)
}

func (c *Checker) Date(field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		c.Add(field, "required", field+" is required")
		return
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		c.Add(field, "invalid", field+" must be a date in YYYY-MM-DD form")
	}
}

func (c *Checker) OneOf(field, v string, options ...string) {
	for _, o := range options {
		if v == o {
			return
		}
	}
	c.Add(field, "invalid", field+" must be one of "+strings.Join(options, ", "))
}
