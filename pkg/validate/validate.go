// Package validate holds the form field checks shared by every handler.
//
// Each check returns (ok, msg). msg is empty when ok is true and is meant to be
// shown to the user as-is otherwise. Checks never panic on malformed input.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	EmailMaxLen    = 120
	NameMinLen     = 2
	NameMaxLen     = 150
	PasswordMinLen = 6
	CropNameMaxLen = 150
	LandAreaMax    = 99999
	NoMax          = math.MaxInt
)

var (
	emailRX  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobileRX = regexp.MustCompile(`^(\+91|0)?[6-9]\d{9}$`)
	prefixRX = regexp.MustCompile(`^(\+91|0)`)
	spaceRX  = regexp.MustCompile(`\s`)
	nameRX   = regexp.MustCompile(`^[\p{L}\p{M}\s'-]+$`)
)

// Check is one evaluated rule; see First.
type Check struct {
	OK  bool
	Msg string
}

func C(ok bool, msg string) Check { return Check{OK: ok, Msg: msg} }

// First returns the first failing check.
func First(checks ...Check) (bool, string) {
	for _, c := range checks {
		if !c.OK {
			return false, c.Msg
		}
	}
	return true, ""
}

func blank(v string) bool { return strings.TrimSpace(v) == "" }

func Email(v string) (bool, string) {
	if blank(v) {
		return false, "Email is required."
	}
	v = strings.TrimSpace(v)
	if len(v) > EmailMaxLen {
		return false, "Email is too long."
	}
	if !emailRX.MatchString(v) {
		return false, "Enter a valid email address."
	}
	return true, ""
}

// Mobile accepts an Indian mobile number: 10 digits starting 6-9, optionally
// prefixed with +91 or 0. Whitespace anywhere is ignored.
func Mobile(v string, required bool) (bool, string) {
	if blank(v) {
		if required {
			return false, "Mobile number is required."
		}
		return true, ""
	}
	if !mobileRX.MatchString(spaceRX.ReplaceAllString(v, "")) {
		return false, "Enter a valid 10-digit mobile number (e.g. 9876543210)."
	}
	return true, ""
}

// NormalizeMobile returns the bare 10 digits, or "" when v is not a valid mobile.
func NormalizeMobile(v string) string {
	v = spaceRX.ReplaceAllString(v, "")
	if !mobileRX.MatchString(v) {
		return ""
	}
	return prefixRX.ReplaceAllString(v, "")
}

func Name(v, label string, required bool) (bool, string) {
	if blank(v) {
		if required {
			return false, label + " is required."
		}
		return true, ""
	}
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	if n < NameMinLen {
		return false, fmt.Sprintf("%s must be at least %d characters.", label, NameMinLen)
	}
	if n > NameMaxLen {
		return false, fmt.Sprintf("%s must be at most %d characters.", label, NameMaxLen)
	}
	if !nameRX.MatchString(v) {
		return false, label + " can only contain letters, spaces, hyphens and apostrophe."
	}
	return true, ""
}

func Password(v string) (bool, string) {
	if v == "" {
		return false, "Password is required."
	}
	if utf8.RuneCountInString(v) < PasswordMinLen {
		return false, fmt.Sprintf("Password must be at least %d characters.", PasswordMinLen)
	}
	var letter, digit bool
	for _, r := range v {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !letter || !digit {
		return false, "Password must contain at least one letter and one number."
	}
	return true, ""
}

func ConfirmPassword(password, confirm string) (bool, string) {
	if confirm == "" {
		return false, "Please confirm your password."
	}
	if password != confirm {
		return false, "Passwords do not match."
	}
	return true, ""
}

func LandArea(v string, required bool) (bool, string) {
	if blank(v) {
		if required {
			return false, "Land area is required."
		}
		return true, ""
	}
	n, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return false, "Enter a valid number for land area."
	}
	if n.IsNegative() {
		return false, "Land area cannot be negative."
	}
	if n.GreaterThan(decimal.NewFromInt(LandAreaMax)) {
		return false, "Land area is too large."
	}
	return true, ""
}

// NonNegative accepts any decimal >= 0.
func NonNegative(v, label string, required bool) (bool, string) {
	return number(v, label, required, true)
}

// Positive accepts any decimal > 0.
func Positive(v, label string, required bool) (bool, string) {
	return number(v, label, required, false)
}

func number(v, label string, required, allowZero bool) (bool, string) {
	if blank(v) {
		if required {
			return false, label + " is required."
		}
		return true, ""
	}
	n, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return false, "Enter a valid number for " + label + "."
	}
	if allowZero && n.IsNegative() {
		return false, label + " cannot be negative."
	}
	if !allowZero && !n.IsPositive() {
		return false, label + " must be greater than zero."
	}
	return true, ""
}

// IntRange checks an integer in [min, max]; pass NoMax for an open upper bound.
// A fractional input is truncated first.
func IntRange(v, label string, min, max int, required bool) (bool, string) {
	if blank(v) {
		if required {
			return false, label + " is required."
		}
		return true, ""
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return false, "Enter a valid number for " + label + "."
	}
	n := int(d.IntPart())
	if n < min {
		return false, fmt.Sprintf("%s must be at least %d.", label, min)
	}
	if max != NoMax && n > max {
		return false, fmt.Sprintf("%s must be at most %d.", label, max)
	}
	return true, ""
}

// DecimalRange checks a decimal in [min, max], e.g. a discount percentage.
func DecimalRange(v, label string, min, max int64, required bool) (bool, string) {
	if blank(v) {
		if required {
			return false, label + " is required."
		}
		return true, ""
	}
	n, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return false, "Enter a valid number for " + label + "."
	}
	if n.LessThan(decimal.NewFromInt(min)) {
		return false, fmt.Sprintf("%s cannot be less than %d.", label, min)
	}
	if n.GreaterThan(decimal.NewFromInt(max)) {
		return false, fmt.Sprintf("%s cannot be more than %d.", label, max)
	}
	return true, ""
}

func CropName(v string) (bool, string) {
	if blank(v) {
		return false, "Crop name is required."
	}
	if utf8.RuneCountInString(strings.TrimSpace(v)) > CropNameMaxLen {
		return false, "Crop name is too long."
	}
	return true, ""
}

// Identifier checks a login identifier; kind names what was expected.
func Identifier(v, kind string) (bool, string) {
	if blank(v) {
		return false, "Please enter " + kind + "."
	}
	return true, ""
}

func RequiredString(v, label string, min, max int) (bool, string) {
	if blank(v) {
		return false, label + " is required."
	}
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	if n < min {
		return false, fmt.Sprintf("%s must be at least %d character(s).", label, min)
	}
	if n > max {
		return false, fmt.Sprintf("%s must be at most %d characters.", label, max)
	}
	return true, ""
}

// ParseDecimal converts an already validated field; blank or junk gives zero.
func ParseDecimal(v string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseDecimalPtr is ParseDecimal for optional columns; blank gives nil.
func ParseDecimalPtr(v string) *decimal.Decimal {
	if blank(v) {
		return nil
	}
	d := ParseDecimal(v)
	return &d
}

// ParseInt truncates an already validated integer field; blank gives zero.
func ParseInt(v string) int {
	return int(ParseDecimal(v).IntPart())
}
