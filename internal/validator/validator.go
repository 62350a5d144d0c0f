// Package validator accumulates field-level violations from a chain of
// checks:
//
//	violations := validator.New().
//		Required("name", name).
//		MaxLength("name", name, 50).
//		Validate()
package validator

import (
	"fmt"

	"github.com/johnwards/temple/internal/domain"
)

// Kind is the type of a violation.
type Kind int

const (
	// Required means the field was empty.
	Required Kind = iota + 1

	// MaxLength means the field exceeded Violation.Max bytes.
	MaxLength
)

// Violation is one failed check.
type Violation struct {
	Field string
	Kind  Kind
	Max   int
}

// Message renders the violation for humans.
func (v Violation) Message() string {
	switch v.Kind {
	case Required:
		return fmt.Sprintf("%s can't be blank", v.Field)
	case MaxLength:
		return fmt.Sprintf("%s is too long, maximum length is %d bytes", v.Field, v.Max)
	default:
		return fmt.Sprintf("%s is invalid", v.Field)
	}
}

// Err converts the violation into an InvalidArgument error.
func (v Violation) Err() error {
	return domain.InvalidArgument("%s", v.Message())
}

// Validator collects violations in call order. The zero value is ready to
// use.
type Validator struct {
	violations []Violation
}

// New starts a validation chain.
func New() *Validator {
	return &Validator{}
}

// Required records a violation when value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if value == "" {
		v.violations = append(v.violations, Violation{Field: field, Kind: Required})
	}
	return v
}

// MaxLength records a violation when value is longer than n bytes. The limit
// counts bytes, so multi-byte characters use up more than one.
func (v *Validator) MaxLength(field, value string, n int) *Validator {
	if len(value) > n {
		v.violations = append(v.violations, Violation{Field: field, Kind: MaxLength, Max: n})
	}
	return v
}

// Validate returns the collected violations. An empty slice means valid.
func (v *Validator) Validate() []Violation {
	if v.violations == nil {
		return []Violation{}
	}
	return v.violations
}

// First returns the first violation as an error, or nil when there are none.
func First(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return violations[0].Err()
}

// NameMaxLength is the byte limit applied to every entity name.
const NameMaxLength = 50

// Name validates an entity name and returns the first violation as an error.
func Name(name string) error {
	return First(New().
		Required("name", name).
		MaxLength("name", name, NameMaxLength).
		Validate())
}
