package crud

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nebula/nebula-backend/internal/domain"
)

// Field length limits shared by commands and storage.
const (
	MaxNameLength     = 100
	MaxTextLength     = 2000
	MaxTypeNameLength = 200
)

// Rules collects field errors without short-circuiting so callers get every
// violation at once.
type Rules struct {
	errs []domain.FieldError
}

// Add records a violation.
func (r *Rules) Add(field, message string) {
	r.errs = append(r.errs, domain.FieldError{Field: field, Message: message})
}

// Required fails when value is empty or whitespace only. It reports whether
// the value passed.
func (r *Rules) Required(field, label, value string) bool {
	if strings.TrimSpace(value) == "" {
		r.Add(field, label+" is required.")
		return false
	}
	return true
}

// MaxLength fails when value has more than limit characters.
func (r *Rules) MaxLength(field, label, value string, limit int) bool {
	if utf8.RuneCountInString(value) > limit {
		r.Add(field, fmt.Sprintf("%s cannot exceed %d characters.", label, limit))
		return false
	}
	return true
}

// Text applies Required and MaxLength independently and reports whether
// both passed.
func (r *Rules) Text(field, label, value string, limit int) bool {
	required := r.Required(field, label, value)
	short := r.MaxLength(field, label, value, limit)
	return required && short
}

// Name applies Text plus the personal-name character class. Each rule
// reports on its own, so a blank name is both required and invalid.
func (r *Rules) Name(field, label, value string) bool {
	ok := r.Text(field, label, value, MaxNameLength)
	if !validName(value) {
		r.Add(field, label+" contains invalid characters.")
		ok = false
	}
	return ok
}

// validName accepts non-blank values made of letters, spaces, hyphens and
// apostrophes.
func validName(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, c := range value {
		if !unicode.IsLetter(c) && c != ' ' && c != '-' && c != '\'' {
			return false
		}
	}
	return true
}

// Valid reports whether no violation has been recorded.
func (r *Rules) Valid() bool {
	return len(r.errs) == 0
}

// Err returns the collected violations as a *domain.ValidationError, or nil.
func (r *Rules) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(r.errs)
}
