package request

// RegisterTravelerRequest carries the whole sign-up form. Field-level
// rules are deliberately not expressed as validator tags: the submitter
// checks them one by one in a fixed order and stops at the first
// failure with that field's own message.
type RegisterTravelerRequest struct {
	TravelerName    string `json:"traveler_name"`
	CNIC            string `json:"cnic"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contact_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Preference      string `json:"preference"`
}

// FieldCheckRequest asks for a live validation of a single field's
// current value.
type FieldCheckRequest struct {
	Field string `json:"field" validate:"required,oneof=traveler_name cnic username email contact_number password confirm_password preference"`
	Value string `json:"value"`
	// Password supplies the primary password when field is
	// confirm_password; ignored otherwise.
	Password string `json:"password,omitempty"`
}

// ClearFormRequest carries the current form values so the service can
// decide whether clearing needs a confirmation, plus the user's answer
// to that confirmation.
type ClearFormRequest struct {
	TravelerName    string `json:"traveler_name"`
	CNIC            string `json:"cnic"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contact_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Preference      string `json:"preference"`
	Confirmed       bool   `json:"confirmed"`
}
