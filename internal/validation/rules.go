// Package validation holds the format rules applied to venue and artist
// submissions before anything is persisted.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrInvalidFormat = errors.New("invalid format")

// Optional parentheses around the area code, then optional '-', '.' or ' '
// between the groups.
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

const facebookPrefix = "https://www.facebook.com/"

func Phone(value string) error {
	if !phonePattern.MatchString(value) {
		return fmt.Errorf("%w: invalid phone number. Accepted formats: 1234567890, 123.456.7890, 123-456-7890, 123 456 7890", ErrInvalidFormat)
	}
	return nil
}

// Link accepts an empty value; otherwise the value must use an http or https scheme.
func Link(value string) error {
	if value == "" {
		return nil
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%w: link must start with http:// or https://", ErrInvalidFormat)
	}
	return nil
}

func FacebookLink(value string) error {
	if value == "" {
		return nil
	}
	if !strings.HasPrefix(value, facebookPrefix) {
		return fmt.Errorf("%w: must be a valid Facebook URL starting with %s", ErrInvalidFormat, facebookPrefix)
	}
	return nil
}

var (
	PhoneRule        = stringRule(Phone)
	LinkRule         = stringRule(Link)
	FacebookLinkRule = stringRule(FacebookLink)
)

// stringRule adapts a string predicate to an ozzo rule. The message of the
// resulting error drops the ErrInvalidFormat prefix so forms show only the
// human readable part.
func stringRule(check func(string) error) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			if p, isPtr := value.(*string); isPtr && p != nil {
				s = *p
			} else {
				return errors.New("must be a string")
			}
		}
		if err := check(s); err != nil {
			return errors.New(strings.TrimPrefix(err.Error(), ErrInvalidFormat.Error()+": "))
		}
		return nil
	})
}
