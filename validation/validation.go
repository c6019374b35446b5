// Package validation evaluates declarative per-field rules before a write.
//
// A Field carries an ordered list of checks. Synchronous checks run first
// and stop at the field's first failure; deferred checks (uniqueness and
// reference lookups backed by the database) run only when every
// synchronous check of that field passed. Fields are independent, so one
// request can report violations for several fields at once.
package validation

import (
	"net/mail"
	"net/url"
	"unicode/utf8"

	"course-admin/util/errs"
)

// Check validates one aspect of a field value.
type Check struct {
	passes   func() (bool, error)
	message  string
	deferred bool
}

// Sync wraps a pure predicate into a synchronous check.
func Sync(passes func() bool, message string) Check {
	return Check{
		passes:  func() (bool, error) { return passes(), nil },
		message: message,
	}
}

// Field is a named, ordered list of checks.
type Field struct {
	Name   string
	Checks []Check
}

// Apply evaluates all fields and aggregates every violation into a single
// *errs.ValidationError, in field declaration order. A lookup failure
// (storage fault inside a deferred check) aborts evaluation and is
// returned as-is.
func Apply(fields ...Field) error {
	var messages []string
	for _, field := range fields {
		failed := false
		deferred := make([]Check, 0, 1)
		for _, check := range field.Checks {
			if check.deferred {
				deferred = append(deferred, check)
				continue
			}
			ok, _ := check.passes()
			if !ok {
				messages = append(messages, check.message)
				failed = true
				break
			}
		}
		if failed {
			continue
		}
		for _, check := range deferred {
			ok, err := check.passes()
			if err != nil {
				return err
			}
			if !ok {
				messages = append(messages, check.message)
				break
			}
		}
	}
	if len(messages) > 0 {
		return errs.NewValidationError(messages...)
	}
	return nil
}

// Required fails when the field was absent from the request.
func Required(present bool, message string) Check {
	return Sync(func() bool { return present }, message)
}

// NonEmpty fails on the empty string.
func NonEmpty(value string, message string) Check {
	return Sync(func() bool { return value != "" }, message)
}

// Length fails when the value's length in characters is outside [min, max].
func Length(value string, min, max int, message string) Check {
	return Sync(func() bool {
		n := utf8.RuneCountInString(value)
		return n >= min && n <= max
	}, message)
}

// IsEmail fails when the value is not a plain RFC 5322 address.
func IsEmail(value string, message string) Check {
	return Sync(func() bool {
		addr, err := mail.ParseAddress(value)
		return err == nil && addr.Address == value
	}, message)
}

// IsURL passes on the empty string (optional field left unset) and fails
// on anything that does not parse as an absolute http(s) URL.
func IsURL(value string, message string) Check {
	return Sync(func() bool {
		if value == "" {
			return true
		}
		u, err := url.ParseRequestURI(value)
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	}, message)
}

// IsPositive fails on zero or negative values.
func IsPositive(value int, message string) Check {
	return Sync(func() bool { return value > 0 }, message)
}

// OneOf fails when the value is not a member of the allowed set.
func OneOf[T comparable](value T, allowed []T, message string) Check {
	return Sync(func() bool {
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}, message)
}

// Unique defers a lookup for a row with the same value. The lookup
// reports whether such a row exists; existence fails the check.
func Unique(exists func() (bool, error), message string) Check {
	return Check{
		passes: func() (bool, error) {
			found, err := exists()
			return !found, err
		},
		message:  message,
		deferred: true,
	}
}

// Exists defers a lookup for the referenced row; absence fails the check.
func Exists(lookup func() (bool, error), message string) Check {
	return Check{
		passes:   lookup,
		message:  message,
		deferred: true,
	}
}
