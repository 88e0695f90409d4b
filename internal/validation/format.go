package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"travelease/internal/data/entity"
)

// FormInput carries the raw form values as typed by the user.
type FormInput struct {
	TravelerName    string
	CNIC            string
	Username        string
	Email           string
	ContactNumber   string
	Password        string
	ConfirmPassword string
	Preference      string
}

// Value returns the raw value for a field.
func (in FormInput) Value(f Field) string {
	switch f {
	case FieldName:
		return in.TravelerName
	case FieldCNIC:
		return in.CNIC
	case FieldUsername:
		return in.Username
	case FieldEmail:
		return in.Email
	case FieldContact:
		return in.ContactNumber
	case FieldPassword:
		return in.Password
	case FieldConfirmPassword:
		return in.ConfirmPassword
	case FieldPreference:
		return in.Preference
	}
	return ""
}

// HasData reports whether any field holds a non-default value. This
// replaces the original screen's recursive control-tree walk and gates
// the clear-form confirmation.
func (in FormInput) HasData() bool {
	for _, f := range SubmitOrder {
		v := in.Value(f)
		if f == FieldPreference {
			if v != "" && v != entity.PreferencePlaceholder {
				return true
			}
			continue
		}
		if v != "" {
			return true
		}
	}
	return false
}

// CheckFormat applies the field's format rule to the form input and
// returns nil when it passes. Values are trimmed before length checks;
// the charset is re-checked server-side even though the input filter
// already enforces it at keystroke granularity.
func CheckFormat(f Field, in FormInput) *FieldError {
	raw := in.Value(f)
	v := strings.TrimSpace(raw)

	if f != FieldPreference && raw != FilterInput(f, raw) {
		return formatFailure(f)
	}

	switch f {
	case FieldName:
		// Name and password admit any Unicode letter, so lengths are
		// counted in runes, not bytes.
		if n := utf8.RuneCountInString(v); n < 8 || n > 20 {
			return formatFailure(f)
		}
	case FieldCNIC:
		if len(v) != 15 {
			return formatFailure(f)
		}
	case FieldUsername:
		if len(v) < 8 || len(v) > 20 {
			return formatFailure(f)
		}
	case FieldEmail:
		if len(v) < 8 || len(v) > 20 || !strings.Contains(v, "@") || !strings.Contains(v, ".") {
			return formatFailure(f)
		}
		if !validEmail(v) {
			return formatFailure(f)
		}
	case FieldContact:
		if len(v) != 11 {
			return formatFailure(f)
		}
	case FieldPassword:
		if n := utf8.RuneCountInString(v); n < 8 || n > 15 {
			return formatFailure(f)
		}
	case FieldConfirmPassword:
		if in.ConfirmPassword == "" || in.ConfirmPassword != in.Password {
			return formatFailure(f)
		}
	case FieldPreference:
		if !entity.ValidPreference(v) {
			return formatFailure(f)
		}
	}
	return nil
}

// CheckForm runs the format rules over every field in submit order and
// returns the first failure.
func CheckForm(in FormInput) *FieldError {
	for _, f := range SubmitOrder {
		if err := CheckFormat(f, in); err != nil {
			return err
		}
	}
	return nil
}

func formatFailure(f Field) *FieldError {
	switch f {
	case FieldName:
		return formatError(f, TitleInvalidInput, MsgInvalidName)
	case FieldCNIC:
		return formatError(f, TitleInvalidCNIC, MsgInvalidCNIC)
	case FieldUsername:
		return formatError(f, TitleInvalidInput, MsgInvalidUsername)
	case FieldEmail:
		return formatError(f, TitleInvalidEmail, MsgInvalidEmail)
	case FieldContact:
		return formatError(f, TitleInvalidInput, MsgInvalidContact)
	case FieldPassword:
		return formatError(f, TitleInvalidInput, MsgInvalidPassword)
	case FieldConfirmPassword:
		return formatError(f, TitleInvalidInput, MsgInvalidConfirm)
	case FieldPreference:
		return formatError(f, TitleMissingPreference, MsgMissingPreference)
	}
	return formatError(f, TitleInvalidInput, "INVALID FIELD")
}

// validEmail requires the address to parse and round-trip exactly, so
// display names and angle brackets are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
