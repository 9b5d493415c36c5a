// Package contact implements the contact form: field validation, the
// submission state machine with its timed return to idle, and the client
// for the external form endpoint.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RevertDelay is how long a Success or Error banner stays before the form
// returns to Idle.
const RevertDelay = 5 * time.Second

// Status is the submission state shown by the form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "error"
	default:
		return "unknown"
	}
}

// Fields is the payload posted to the form endpoint.
type Fields struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Sanitized returns the fields as an HTML form submits them: the email
// loses its surrounding whitespace, name and message are sent as typed.
func (f Fields) Sanitized() Fields {
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// FieldError names the first field that failed validation.
type FieldError struct {
	Field string // "name", "email" or "message"
	Rule  string // "required" or "email"
}

func (e *FieldError) Error() string {
	if e.Rule == "email" {
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

var validate = validator.New()

// Validate checks the required-field and email rules on the sanitized
// fields. Required means non-empty, so whitespace-only text passes as it
// does in a browser. It returns a *FieldError for the first failing field
// in form order.
func Validate(f Fields) error {
	err := validate.Struct(f.Sanitized())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return &FieldError{Field: strings.ToLower(first.Field()), Rule: first.Tag()}
}

// Token identifies one pending revert timer. Only the most recently issued
// token can move the form back to Idle.
type Token uint64

// Form is the submission state machine. It is not safe for concurrent use;
// all calls happen on the UI loop.
type Form struct {
	Fields Fields
	status Status
	gen    Token
}

// Status returns the current state.
func (f *Form) Status() Status { return f.status }

// Begin moves to Submitting. It refuses (returns false) while a submission
// is already in flight. Any pending revert timer is invalidated.
func (f *Form) Begin() bool {
	if f.status == StatusSubmitting {
		return false
	}
	f.gen++
	f.status = StatusSubmitting
	return true
}

// Complete records the outcome of the in-flight submission. Success clears
// the fields; failure keeps them for resubmission. The returned token must
// be passed to Revert when RevertDelay has elapsed.
func (f *Form) Complete(err error) Token {
	if f.status != StatusSubmitting {
		return 0
	}
	f.gen++
	if err != nil {
		f.status = StatusFailed
	} else {
		f.status = StatusSuccess
		f.Fields = Fields{}
	}
	return f.gen
}

// Revert returns to Idle if tok is the current token and a banner is shown.
// Stale tokens and repeated calls are ignored.
func (f *Form) Revert(tok Token) bool {
	if tok == 0 || tok != f.gen {
		return false
	}
	if f.status != StatusSuccess && f.status != StatusFailed {
		return false
	}
	f.status = StatusIdle
	f.gen++
	return true
}

// Cancel invalidates every pending timer. Used when the form goes away.
func (f *Form) Cancel() {
	f.gen++
}
