// Package intake checks lead-capture forms before they are handed to the
// submission endpoint. It never talks to the endpoint itself.
package intake

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field names used by the site's forms.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldArea    = "area"
	FieldMessage = "message"
)

// ConsultationFields lists every field the consultation form collects.
func ConsultationFields() []string {
	return []string{FieldName, FieldEmail, FieldPhone, FieldArea, FieldMessage}
}

// ErrMissingField matches every *MissingFieldError.
var ErrMissingField = errors.New("intake: missing required field")

// MissingFieldError names the first required field that was empty.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("intake: missing required field %q", e.Name)
}

// Is lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Form identifies which form a submission came from.
type Form string

const (
	FormConsultation Form = "consultation"
	FormNewsletter   Form = "newsletter"
)

// DefaultRequired returns the required fields of a form.
func DefaultRequired(form Form) []string {
	switch form {
	case FormNewsletter:
		return []string{FieldEmail}
	default:
		return []string{FieldName, FieldEmail, FieldMessage}
	}
}

// Validate succeeds when every required field has a non-blank value. On
// failure the error names the lexicographically first missing field, so the
// report is the same on every run.
func Validate(fields map[string]string, required []string) error {
	names := append([]string(nil), required...)
	sort.Strings(names)
	for _, name := range names {
		if strings.TrimSpace(fields[name]) == "" {
			return &MissingFieldError{Name: name}
		}
	}
	return nil
}

// Submission is a validated form ready for the submission endpoint.
type Submission struct {
	ID          string
	Form        Form
	Fields      map[string]string
	RequestedAt time.Time
}

// Request validates fields and, on success, raises the submit signal as a
// Submission carrying a copy of the trimmed values.
func Request(form Form, fields map[string]string, required []string) (Submission, error) {
	if err := Validate(fields, required); err != nil {
		return Submission{}, err
	}
	copied := make(map[string]string, len(fields))
	for name, value := range fields {
		copied[name] = strings.TrimSpace(value)
	}
	return Submission{
		ID:          uuid.NewString(),
		Form:        form,
		Fields:      copied,
		RequestedAt: time.Now().UTC(),
	}, nil
}

// Handoff delivers a submission to the external endpoint.
type Handoff func(ctx context.Context, sub Submission) error
