package validation

import (
	"strings"
	"unicode"
)

// Field identifies one input on the traveler sign-up form.
type Field string

const (
	FieldName            Field = "traveler_name"
	FieldCNIC            Field = "cnic"
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldContact         Field = "contact_number"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
	FieldPreference      Field = "preference"
)

// SubmitOrder is the fixed order in which fields are re-checked at
// submission time. The first failing field aborts the whole pass.
var SubmitOrder = []Field{
	FieldName,
	FieldCNIC,
	FieldUsername,
	FieldEmail,
	FieldContact,
	FieldPassword,
	FieldConfirmPassword,
	FieldPreference,
}

// KnownField reports whether f names a form field.
func KnownField(f Field) bool {
	for _, known := range SubmitOrder {
		if f == known {
			return true
		}
	}
	return false
}

// NeedsUniqueness reports whether the field carries a uniqueness
// constraint in storage.
func NeedsUniqueness(f Field) bool {
	return f == FieldUsername || f == FieldEmail || f == FieldContact
}

// AllowedRune reports whether r may be typed into the field at all.
// This is the keystroke-level input filter: a rejected rune never
// becomes part of the field's content.
func AllowedRune(f Field, r rune) bool {
	switch f {
	case FieldName:
		return unicode.IsLetter(r) || r == ' '
	case FieldCNIC:
		return (r >= '0' && r <= '9') || r == '-'
	case FieldUsername:
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	case FieldEmail:
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '@' || r == '.'
	case FieldContact:
		return r >= '0' && r <= '9'
	case FieldPassword, FieldConfirmPassword:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// FilterInput drops every rune the field's input filter would reject.
func FilterInput(f Field, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if AllowedRune(f, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
