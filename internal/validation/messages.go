package validation

// Notification is a user-facing modal message. Titles, messages, and
// button sets are carried over verbatim from the desktop screen; clients
// render them as-is.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity string   `json:"severity"`
	Buttons  []string `json:"buttons"`
}

const (
	SeverityWarning     = "warning"
	SeverityError       = "error"
	SeverityInformation = "information"
)

const (
	MsgInvalidName       = "TRAVELER NAME IS INVALID. IT SHOULD BE 8-20 CHARACTERS LONG AND CONTAIN ONLY ALPHABETS AND SPACES."
	MsgInvalidCNIC       = "CNIC NUMBER IS INVALID. IT SHOULD BE EXACT 15 CHARACTERS."
	MsgInvalidUsername   = "USERNAME IS INVALID. PLEASE ENSURE IT'S BETWEEN 8-20 CHARACTERS AND ONLY CONTAINS ALPHABETS."
	MsgInvalidEmail      = "EMAIL IS INVALID. PLEASE USE A VALID EMAIL FORMAT LIKE USER@EXAMPLE.COM."
	MsgInvalidContact    = "CONTACT NUMBER IS INVALID. IT SHOULD BE 11 DIGITS LONG."
	MsgInvalidPassword   = "PASSWORD IS INVALID. IT SHOULD BE AT LEAST 8 CHARACTERS."
	MsgInvalidConfirm    = "CONFIRM PASSWORD IS INVALID. IT SHOULD MATCH THE PASSWORD."
	MsgMissingPreference = "PLEASE SELECT A PREFERENCE."

	MsgDuplicateUsername = "USERNAME ALREADY EXISTS FOR ROLE TRAVELER"
	MsgDuplicateEmail    = "EMAIL IS ALREADY REGISTERED FOR ROLE TRAVELER."
	MsgDuplicateContact  = "CONTACT NUMBER IS ALREADY IN USE FOR ROLE TRAVELER."

	TitleInvalidInput      = "INVALID INPUT"
	TitleInvalidCNIC       = "INVALID CNIC"
	TitleInvalidEmail      = "INVALID EMAIL"
	TitleMissingPreference = "MISSING PREFERENCE"
	TitleDuplicateUsername = "DUPLICATE USERNAME"
	TitleDuplicateEmail    = "DUPLICATE EMAIL"
	TitleDuplicateContact  = "DUPLICATE CONTACT"
)

var buttonsOK = []string{"OK"}

// FieldError reports a single failed field together with the modal
// notification the screen shows for it.
type FieldError struct {
	Field        Field
	Notification Notification
}

func (e *FieldError) Error() string {
	return e.Notification.Message
}

func formatError(f Field, title, msg string) *FieldError {
	return &FieldError{
		Field: f,
		Notification: Notification{
			Title:    title,
			Message:  msg,
			Severity: SeverityWarning,
			Buttons:  buttonsOK,
		},
	}
}

// DuplicateNotification returns the uniqueness-conflict modal for one of
// the three uniqueness-checked fields.
func DuplicateNotification(f Field) Notification {
	n := Notification{Severity: SeverityError, Buttons: buttonsOK}
	switch f {
	case FieldUsername:
		n.Title, n.Message = TitleDuplicateUsername, MsgDuplicateUsername
	case FieldEmail:
		n.Title, n.Message = TitleDuplicateEmail, MsgDuplicateEmail
	case FieldContact:
		n.Title, n.Message = TitleDuplicateContact, MsgDuplicateContact
	}
	return n
}
