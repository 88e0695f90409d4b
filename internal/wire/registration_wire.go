package wire

import (
	"travelease/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRegistration(r chi.Router, h *adaptor.RegistrationHandler) {
	// All routes are public: this is the sign-up surface.
	r.Post("/api/traveler/register", h.Register)
	r.Post("/api/traveler/check-field", h.CheckField)
	r.Post("/api/traveler/clear-form", h.ClearForm)
	r.Get("/api/traveler/preferences", h.Preferences)
}
