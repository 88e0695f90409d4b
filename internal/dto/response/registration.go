package response

import (
	"travelease/internal/data/entity"
	"travelease/internal/validation"
)

type RegisterResponse struct {
	UserID       int64                   `json:"user_id"`
	ReferenceID  string                  `json:"reference_id"`
	Role         entity.UserRole         `json:"role"`
	Notification validation.Notification `json:"notification"`
	// CloseScreen tells the client to close the sign-up screen and
	// return control to the parent.
	CloseScreen bool `json:"close_screen"`
}

type FieldCheckResponse struct {
	Field         string                   `json:"field"`
	FilteredValue string                   `json:"filtered_value"`
	Status        string                   `json:"status"`
	Notification  *validation.Notification `json:"notification,omitempty"`
}

type ClearFormResponse struct {
	RequiresConfirmation bool                     `json:"requires_confirmation"`
	Notification         *validation.Notification `json:"notification,omitempty"`
	CloseScreen          bool                     `json:"close_screen"`
}

type PreferencesResponse struct {
	Placeholder string   `json:"placeholder"`
	Preferences []string `json:"preferences"`
}
